package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"kanban/internal/app/dto"

	"github.com/gin-gonic/gin"
)

var idParams = map[string]struct{}{
	"id":        {},
	"columnId":  {},
	"cardId":    {},
	"commentId": {},
}

// ParseID id в пути: положительное целое
func ParseID(raw string) (uint, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%q is not a valid id", raw)
	}
	return uint(v), nil
}

// ValidateIDParams отклоняет кривые id до авторизации и обращения к базе
func ValidateIDParams() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, p := range c.Params {
			if _, ok := idParams[p.Key]; !ok {
				continue
			}
			if _, err := ParseID(p.Value); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.ValidationErrorResponse{
					Status:  "fail",
					Message: "invalid path parameter",
					Errors: []dto.FieldError{{
						Field: p.Key,
						Rule:  "numeric",
					}},
				})
				return
			}
		}
		c.Next()
	}
}
