package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"thelo/internal/auth"
	"thelo/internal/models"
)

type productInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	PriceCents  int    `json:"priceCents" binding:"required,gt=0"`
	Category    string `json:"category" binding:"required"`
	Stock       *int   `json:"stock" binding:"required,gte=0"`
	Location    string `json:"location" binding:"required"`
	ImageURL    string `json:"imageUrl"`
}

// указатели, чтобы отличать «не прислали» от нулевого значения
type productUpdateInput struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	PriceCents  *int                  `json:"priceCents"`
	Category    *string               `json:"category"`
	Stock       *int                  `json:"stock"`
	Location    *string               `json:"location"`
	Status      *models.ProductStatus `json:"status"`
	ImageURL    *string               `json:"imageUrl"`
}

// ProductRoutes — публичный каталог и seller-операции над товарами
func ProductRoutes(r *gin.Engine, db *gorm.DB, secret []byte) {
	g := r.Group("/products")
	seller := g.Group("", auth.Required(secret), auth.RequireRole(models.RoleSeller))

	// Public catalog: Active only, optional case-insensitive filters.
	g.GET("", func(c *gin.Context) {
		q := db.Where("status = ?", models.ProductActive)
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			like := "%" + strings.ToLower(search) + "%"
			q = q.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", like, like)
		}
		if location := strings.TrimSpace(c.Query("location")); location != "" {
			q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
		}

		items := []models.Product{}
		if err := q.Order("created_at desc").Find(&items).Error; err != nil {
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": items})
	})

	seller.GET("/my-products", func(c *gin.Context) {
		claims := auth.MustClaims(c)
		var profile models.SellerProfile
		if err := db.Where("user_id = ?", claims.UserID).First(&profile).Error; err != nil {
			// без профиля у продавца просто нет товаров
			c.JSON(http.StatusOK, gin.H{"success": true, "products": []models.Product{}})
			return
		}
		items := []models.Product{}
		if err := db.Where("seller_id = ?", profile.ID).Order("created_at desc").Find(&items).Error; err != nil {
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": items})
	})

	seller.POST("", func(c *gin.Context) {
		claims := auth.MustClaims(c)
		var profile models.SellerProfile
		if err := db.Where("user_id = ?", claims.UserID).First(&profile).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Seller profile not found."})
			return
		}

		var in productInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
			return
		}
		p := models.Product{
			SellerID:    profile.ID,
			Name:        in.Name,
			Description: in.Description,
			PriceCents:  in.PriceCents,
			Category:    in.Category,
			Stock:       *in.Stock,
			Location:    in.Location,
			Status:      models.ProductActive,
			ImageURL:    in.ImageURL,
		}
		if err := db.Create(&p).Error; err != nil {
			internalError(c)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully!", "product": p})
	})

	seller.PUT("/:id", func(c *gin.Context) {
		product, ok := findOwnedProduct(c, db)
		if !ok {
			return
		}

		var in productUpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
			return
		}
		if in.Status != nil && !in.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product status."})
			return
		}

		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.PriceCents != nil {
			product.PriceCents = *in.PriceCents
		}
		if in.Category != nil {
			product.Category = *in.Category
		}
		if in.Stock != nil {
			product.Stock = *in.Stock
		}
		if in.Location != nil {
			product.Location = *in.Location
		}
		if in.Status != nil {
			product.Status = *in.Status
		}
		if in.ImageURL != nil {
			product.ImageURL = *in.ImageURL
		}

		if err := db.Save(product).Error; err != nil {
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully!", "product": product})
	})

	seller.DELETE("/:id", func(c *gin.Context) {
		product, ok := findOwnedProduct(c, db)
		if !ok {
			return
		}
		if err := db.Delete(product).Error; err != nil {
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!"})
	})
}

// findOwnedProduct резолвит товар из :id и проверяет, что он принадлежит
// профилю текущего продавца; ответ при неудаче уже записан
func findOwnedProduct(c *gin.Context, db *gorm.DB) (*models.Product, bool) {
	claims := auth.MustClaims(c)

	var profile models.SellerProfile
	if err := db.Where("user_id = ?", claims.UserID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Seller profile not found."})
		return nil, false
	}

	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found."})
		} else {
			internalError(c)
		}
		return nil, false
	}
	if product.SellerID != profile.ID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: You do not own this product."})
		return nil, false
	}
	return &product, true
}
