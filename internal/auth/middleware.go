package auth

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"thelo/internal/models"
)

const claimsKey = "authClaims"

// ---------- auth guards ----------

// Required reads the session cookie, verifies the token and puts the decoded
// claims on the context. Every protected route group starts with this guard.
func Required(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session invalid or expired"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole допускает только перечисленные роли; ставится после Required
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := MustClaims(c)
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: Access denied"})
	}
}

// MustClaims returns the claims stored by Required; panics if the guard did
// not run, which means a route was wired without it.
func MustClaims(c *gin.Context) *Claims {
	return c.MustGet(claimsKey).(*Claims)
}

// SetSessionCookie ставит HTTP-only куку на сутки; Secure вне разработки
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(CookieName, token, int(TokenTTL.Seconds()), "/", "", secureCookies(), true)
}

// ClearSessionCookie сбрасывает сессионную куку
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", secureCookies(), true)
}

func secureCookies() bool {
	return os.Getenv("APP_ENV") == "production"
}
