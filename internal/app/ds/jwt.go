package ds

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims полезная нагрузка сессионного токена: {id, email, isAdmin}.
// RegisteredClaims.ID (jti) используется как ключ в blacklist.
type JWTClaims struct {
	jwt.RegisteredClaims
	UserID  uint   `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
