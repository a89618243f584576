package models

// OrderStatus — статус заказа
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

// Valid сообщает, известен ли статус
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo allows Pending→Shipped→Delivered and Pending→Cancelled only.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderShipped || next == OrderCancelled
	case OrderShipped:
		return next == OrderDelivered
	}
	return false
}

// PaymentCashOnDelivery — единственный способ оплаты
const PaymentCashOnDelivery = "Cash on Delivery"

// Order — таблица orders
type Order struct {
	Base
	CustomerID      uint        `gorm:"index;not null" json:"customerId"`
	Reference       string      `gorm:"uniqueIndex;not null" json:"reference"`
	Items           []OrderItem `json:"items"`
	TotalCents      int         `gorm:"not null" json:"totalCents"`
	ShippingAddress string      `gorm:"not null" json:"shippingAddress"`
	MobileNumber    string      `gorm:"not null" json:"mobileNumber"`
	Status          OrderStatus `gorm:"type:varchar(16);not null;default:'Pending'" json:"status"`
	PaymentMethod   string      `gorm:"not null;default:'Cash on Delivery'" json:"paymentMethod"`
}

// OrderItem — позиция заказа; PriceCents фиксируется при оформлении
type OrderItem struct {
	Base
	OrderID    uint `gorm:"index;not null" json:"orderId"`
	ProductID  uint `gorm:"index;not null" json:"productId"`
	Quantity   int  `gorm:"not null" json:"quantity"`
	PriceCents int  `gorm:"not null" json:"priceCents"`
}
