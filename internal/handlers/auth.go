package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"thelo/internal/auth"
	"thelo/internal/models"
)

type signupInput struct {
	FirstName string      `json:"firstName" binding:"required"`
	LastName  string      `json:"lastName" binding:"required"`
	Email     string      `json:"email" binding:"required,email"`
	Password  string      `json:"password" binding:"required"`
	Role      models.Role `json:"role" binding:"required"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthRoutes — /auth/signup, /auth/login, /auth/me, /auth/logout
func AuthRoutes(r *gin.Engine, db *gorm.DB, secret []byte) {
	g := r.Group("/auth")

	g.POST("/signup", func(c *gin.Context) {
		var in signupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
			return
		}
		if !in.Role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user role."})
			return
		}

		var cnt int64
		db.Model(&models.User{}).Where("email = ?", in.Email).Count(&cnt)
		if cnt > 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "User with this email already exists."})
			return
		}

		hash, err := models.HashPassword(in.Password)
		if err != nil {
			internalError(c)
			return
		}
		u := models.User{
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         in.Role,
		}
		if err := db.Create(&u).Error; err != nil {
			internalError(c)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully!", "user": u})
	})

	g.POST("/login", func(c *gin.Context) {
		var in loginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
			return
		}

		var u models.User
		if err := db.Where("email = ?", in.Email).First(&u).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials. User not found."})
			return
		}
		if u.PasswordHash == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid account configuration. No password set."})
			return
		}
		if !models.CheckPassword(u.PasswordHash, in.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials. Incorrect password."})
			return
		}

		token, err := auth.GenerateToken(secret, u.ID, u.Email, u.Role)
		if err != nil {
			internalError(c)
			return
		}
		auth.SetSessionCookie(c, token)
		c.JSON(http.StatusOK, gin.H{"message": "Login successful!", "success": true, "user": u})
	})

	g.GET("/me", auth.Required(secret), func(c *gin.Context) {
		claims := auth.MustClaims(c)
		var u models.User
		if err := db.First(&u, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
				return
			}
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
	})

	g.POST("/logout", func(c *gin.Context) {
		auth.ClearSessionCookie(c)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred."})
}
