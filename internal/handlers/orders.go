package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"thelo/internal/auth"
	"thelo/internal/models"
	"thelo/internal/notify"
)

type orderItemInput struct {
	ProductID  uint `json:"productId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,gt=0"`
	PriceCents int  `json:"priceCents" binding:"required,gt=0"`
}

type createOrderInput struct {
	Items           []orderItemInput `json:"items" binding:"required,min=1,dive"`
	TotalCents      int              `json:"totalCents" binding:"required,gt=0"`
	ShippingAddress string           `json:"shippingAddress" binding:"required"`
	MobileNumber    string           `json:"mobileNumber" binding:"required"`
}

type updateOrderInput struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// OrderRoutes — оформление заказа, списки и смена статуса
func OrderRoutes(r *gin.Engine, db *gorm.DB, secret []byte, notifier *notify.Service) {
	g := r.Group("/orders", auth.Required(secret))

	g.POST("", auth.RequireRole(models.RoleShopkeeper), func(c *gin.Context) {
		claims := auth.MustClaims(c)

		var in createOrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order must contain items, a total, a shipping address and a mobile number."})
			return
		}

		// Цены позиций — снимок того, что прислал клиент; из каталога
		// они потом не пересчитываются.
		items := make([]models.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, models.OrderItem{
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				PriceCents: it.PriceCents,
			})
		}
		order := models.Order{
			CustomerID:      claims.UserID,
			Reference:       newOrderReference(),
			Items:           items,
			TotalCents:      in.TotalCents,
			ShippingAddress: in.ShippingAddress,
			MobileNumber:    in.MobileNumber,
			Status:          models.OrderPending,
			PaymentMethod:   models.PaymentCashOnDelivery,
		}
		if err := db.Create(&order).Error; err != nil {
			internalError(c)
			return
		}

		notifySellerOfOrder(db, notifier, &order)

		c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
	})

	g.GET("/my-orders", func(c *gin.Context) {
		claims := auth.MustClaims(c)
		orders := []models.Order{}
		err := db.Preload("Items").
			Where("customer_id = ?", claims.UserID).
			Order("created_at desc").
			Find(&orders).Error
		if err != nil {
			internalError(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	})

	g.GET("/seller", auth.RequireRole(models.RoleSeller), func(c *gin.Context) {
		claims := auth.MustClaims(c)

		var profile models.SellerProfile
		if err := db.Where("user_id = ?", claims.UserID).First(&profile).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Seller profile not found"})
			return
		}

		var productIDs []uint
		if err := db.Model(&models.Product{}).Where("seller_id = ?", profile.ID).Pluck("id", &productIDs).Error; err != nil {
			internalError(c)
			return
		}
		if len(productIDs) == 0 {
			c.JSON(http.StatusOK, gin.H{"success": true, "orders": []models.Order{}})
			return
		}

		var orderIDs []uint
		err := db.Model(&models.OrderItem{}).
			Where("product_id IN ?", productIDs).
			Distinct("order_id").
			Pluck("order_id", &orderIDs).Error
		if err != nil {
			internalError(c)
			return
		}
		if len(orderIDs) == 0 {
			c.JSON(http.StatusOK, gin.H{"success": true, "orders": []models.Order{}})
			return
		}

		orders := []models.Order{}
		err = db.Preload("Items").
			Where("id IN ?", orderIDs).
			Order("created_at desc").
			Find(&orders).Error
		if err != nil {
			internalError(c)
			return
		}

		// Продавец видит только свои позиции заказа.
		owned := make(map[uint]bool, len(productIDs))
		for _, id := range productIDs {
			owned[id] = true
		}
		for i := range orders {
			kept := make([]models.OrderItem, 0, len(orders[i].Items))
			for _, it := range orders[i].Items {
				if owned[it.ProductID] {
					kept = append(kept, it)
				}
			}
			orders[i].Items = kept
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	})

	g.PUT("/:id", auth.RequireRole(models.RoleSeller), func(c *gin.Context) {
		var in updateOrderInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required."})
			return
		}
		if !in.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order status."})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			internalError(c)
			return
		}

		if !order.Status.CanTransitionTo(in.Status) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("Cannot change order status from %s to %s.", order.Status, in.Status),
			})
			return
		}

		if err := db.Model(&order).Update("status", in.Status).Error; err != nil {
			internalError(c)
			return
		}
		order.Status = in.Status

		notifier.Notify(order.CustomerID,
			fmt.Sprintf("Your order (#%s) has been %s.", order.Reference, in.Status),
			"/dashboard/shopkeeper/orders")

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	})
}

// notifySellerOfOrder уведомляет продавца первой позиции о новом заказе;
// любая неудача в цепочке товар → профиль → запись только логируется
func notifySellerOfOrder(db *gorm.DB, notifier *notify.Service, order *models.Order) {
	if len(order.Items) == 0 {
		return
	}
	var product models.Product
	if err := db.First(&product, order.Items[0].ProductID).Error; err != nil {
		log.Printf("notify: new-order notification skipped, product %d: %v", order.Items[0].ProductID, err)
		return
	}
	var profile models.SellerProfile
	if err := db.First(&profile, product.SellerID).Error; err != nil {
		log.Printf("notify: new-order notification skipped, seller profile %d: %v", product.SellerID, err)
		return
	}
	notifier.Notify(profile.UserID,
		fmt.Sprintf("You have a new order (#%s)", order.Reference),
		"/dashboard/seller/orders")
}

// newOrderReference — короткий код заказа для сообщений и списков
func newOrderReference() string {
	return strings.ToUpper(uuid.NewString()[:6])
}
