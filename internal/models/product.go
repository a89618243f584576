package models

// ProductStatus — статус товара в каталоге
type ProductStatus string

const (
	ProductActive   ProductStatus = "Active"
	ProductArchived ProductStatus = "Archived"
)

// Valid сообщает, известен ли статус
func (s ProductStatus) Valid() bool {
	return s == ProductActive || s == ProductArchived
}

// Product — таблица products; принадлежит одному SellerProfile
type Product struct {
	Base
	SellerID    uint          `gorm:"index;not null" json:"sellerId"`
	Name        string        `gorm:"not null" json:"name"`
	Description string        `gorm:"type:text;not null" json:"description"`
	PriceCents  int           `gorm:"not null" json:"priceCents"`
	Category    string        `gorm:"not null" json:"category"`
	Stock       int           `gorm:"not null;default:0" json:"stock"`
	Location    string        `gorm:"not null" json:"location"`
	Status      ProductStatus `gorm:"type:varchar(16);not null;default:'Active'" json:"status"`
	ImageURL    string        `json:"imageUrl,omitempty"`
}
