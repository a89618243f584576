package models

// Notification — таблица notifications; записи только добавляются,
// меняется лишь флаг isRead
type Notification struct {
	Base
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Message string `gorm:"not null" json:"message"`
	Link    string `gorm:"not null" json:"link"`
	IsRead  bool   `gorm:"not null;default:false" json:"isRead"`
}
