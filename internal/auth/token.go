package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"thelo/internal/models"
)

const (
	// CookieName — имя сессионной куки
	CookieName = "token"
	// TokenTTL — срок жизни токена
	TokenTTL = 24 * time.Hour
)

// ErrInvalidToken covers bad signature, expiry and malformed payloads alike.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims — payload сессионного токена
type Claims struct {
	UserID uint        `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a self-contained HS256 token; no server-side session
// record is kept.
func GenerateToken(secret []byte, userID uint, email string, role models.Role) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies signature and expiry and rejects payloads that do not
// carry a user id and a known role.
func ParseToken(secret []byte, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
