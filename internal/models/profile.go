package models

// SellerProfile — таблица seller_profiles; не более одного на пользователя
type SellerProfile struct {
	Base
	UserID          uint   `gorm:"uniqueIndex;not null" json:"userId"`
	BrandName       string `gorm:"not null" json:"brandName"`
	BusinessAddress string `gorm:"not null" json:"businessAddress"`
	GSTNumber       string `json:"gstNumber,omitempty"`
}

// ShopkeeperProfile — таблица shopkeeper_profiles; не более одного на пользователя
type ShopkeeperProfile struct {
	Base
	UserID        uint   `gorm:"uniqueIndex;not null" json:"userId"`
	ShopName      string `gorm:"not null" json:"shopName"`
	ShopAddress   string `gorm:"not null" json:"shopAddress"`
	ContactNumber string `gorm:"not null" json:"contactNumber"`
}
