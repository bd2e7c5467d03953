package middleware

import (
	"kanban/internal/app/ds"

	"github.com/gin-gonic/gin"
)

const (
	currentUserKey = "current_user"
	tokenClaimsKey = "token_claims"
)

// GetUserFromContext пользователь, которого WithAuthCheck загрузил по токену
func GetUserFromContext(c *gin.Context) (*ds.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*ds.User)
	return user, ok
}

func GetClaimsFromContext(c *gin.Context) (*ds.JWTClaims, bool) {
	v, exists := c.Get(tokenClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*ds.JWTClaims)
	return claims, ok
}
