package models

import "golang.org/x/crypto/bcrypt"

// Role — роль пользователя
type Role string

const (
	RoleSeller     Role = "seller"
	RoleShopkeeper Role = "shopkeeper"
)

// Valid сообщает, известна ли роль
func (r Role) Valid() bool {
	return r == RoleSeller || r == RoleShopkeeper
}

// User — таблица users; роль фиксируется при регистрации
type User struct {
	Base
	FirstName    string `gorm:"not null" json:"firstName"`
	LastName     string `gorm:"not null" json:"lastName"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(16);not null" json:"role"`
}

// HashPassword превращает обычный пароль в безопасный хэш
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword проверяет пароль на совпадение с хэшем
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
