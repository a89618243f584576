package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"thelo/internal/auth"
	"thelo/internal/notify"
)

// NotificationRoutes — лента уведомлений текущего пользователя
func NotificationRoutes(r *gin.Engine, secret []byte, notifier *notify.Service) {
	g := r.Group("/notifications", auth.Required(secret))

	g.GET("", func(c *gin.Context) {
		claims := auth.MustClaims(c)
		items, err := notifier.Recent(claims.UserID, notify.DefaultLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching notifications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "notifications": items})
	})

	g.PUT("/read", func(c *gin.Context) {
		claims := auth.MustClaims(c)
		if err := notifier.MarkAllRead(claims.UserID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to mark notifications as read."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notifications marked as read"})
	})
}
