package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"thelo/internal/auth"
	"thelo/internal/models"
)

type sellerProfileInput struct {
	BrandName       string `json:"brandName" binding:"required"`
	BusinessAddress string `json:"businessAddress" binding:"required"`
	GSTNumber       string `json:"gstNumber"`
}

type shopkeeperProfileInput struct {
	ShopName      string `json:"shopName" binding:"required"`
	ShopAddress   string `json:"shopAddress" binding:"required"`
	ContactNumber string `json:"contactNumber" binding:"required"`
}

// ProfileRoutes — создание и чтение профиля по роли из токена
func ProfileRoutes(r *gin.Engine, db *gorm.DB, secret []byte) {
	g := r.Group("/profiles", auth.Required(secret))

	g.POST("", func(c *gin.Context) {
		claims := auth.MustClaims(c)

		var cnt int64
		db.Model(&models.User{}).Where("id = ?", claims.UserID).Count(&cnt)
		if cnt == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}

		switch claims.Role {
		case models.RoleSeller:
			var in sellerProfileInput
			if err := c.ShouldBindJSON(&in); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
				return
			}
			db.Model(&models.SellerProfile{}).Where("user_id = ?", claims.UserID).Count(&cnt)
			if cnt > 0 {
				c.JSON(http.StatusConflict, gin.H{"message": "Profile already exists."})
				return
			}
			p := models.SellerProfile{
				UserID:          claims.UserID,
				BrandName:       in.BrandName,
				BusinessAddress: in.BusinessAddress,
				GSTNumber:       in.GSTNumber,
			}
			if err := db.Create(&p).Error; err != nil {
				internalError(c)
				return
			}
			c.JSON(http.StatusCreated, gin.H{"message": "Seller profile created successfully!", "profile": p})

		case models.RoleShopkeeper:
			var in shopkeeperProfileInput
			if err := c.ShouldBindJSON(&in); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
				return
			}
			db.Model(&models.ShopkeeperProfile{}).Where("user_id = ?", claims.UserID).Count(&cnt)
			if cnt > 0 {
				c.JSON(http.StatusConflict, gin.H{"message": "Profile already exists."})
				return
			}
			p := models.ShopkeeperProfile{
				UserID:        claims.UserID,
				ShopName:      in.ShopName,
				ShopAddress:   in.ShopAddress,
				ContactNumber: in.ContactNumber,
			}
			if err := db.Create(&p).Error; err != nil {
				internalError(c)
				return
			}
			c.JSON(http.StatusCreated, gin.H{"message": "Shopkeeper profile created successfully!", "profile": p})

		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user role."})
		}
	})

	g.GET("", func(c *gin.Context) {
		claims := auth.MustClaims(c)

		switch claims.Role {
		case models.RoleSeller:
			var p models.SellerProfile
			if err := db.Where("user_id = ?", claims.UserID).First(&p).Error; err != nil {
				profileLookupError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "profile": p})

		case models.RoleShopkeeper:
			var p models.ShopkeeperProfile
			if err := db.Where("user_id = ?", claims.UserID).First(&p).Error; err != nil {
				profileLookupError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "profile": p})

		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user role."})
		}
	})
}

func profileLookupError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found. Please create one."})
		return
	}
	internalError(c)
}
