package middleware

import (
	"context"
	"errors"
	"net/http"

	"kanban/internal/app/ds"
	"kanban/internal/app/dto"
	"kanban/internal/app/repository"
	"kanban/internal/app/role"
	"kanban/internal/app/token"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Blacklist хранилище отозванных токенов (см. internal/app/redis)
type Blacklist interface {
	CheckJWTInBlacklist(ctx context.Context, tokenID string) (bool, error)
}

type AuthMiddleware struct {
	Repository *repository.Repository
	Tokens     *token.Service
	Blacklist  Blacklist // nil: отзыв токенов выключен
}

func NewAuthMiddleware(repo *repository.Repository, tokens *token.Service, blacklist Blacklist) *AuthMiddleware {
	return &AuthMiddleware{
		Repository: repo,
		Tokens:     tokens,
		Blacklist:  blacklist,
	}
}

// WithAuthCheck пропускает запрос, если у пользователя есть хотя бы одна из ролей.
// Без ролей маршрут публичный. Ответы: 401 без валидного токена, 403 при отказе.
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		if len(assignedRoles) == 0 {
			gCtx.Next()
			return
		}
		ctx := gCtx.Request.Context()

		claims, err := am.Tokens.Verify(gCtx.GetHeader("Authorization"))
		if err != nil {
			abort(gCtx, http.StatusUnauthorized, "invalid or expired token, try to login again")
			return
		}

		if am.Blacklist != nil {
			revoked, err := am.Blacklist.CheckJWTInBlacklist(ctx, claims.ID)
			if err != nil {
				logrus.Errorf("blacklist lookup failed: %v", err)
				abort(gCtx, http.StatusInternalServerError, "internal server error")
				return
			}
			if revoked {
				abort(gCtx, http.StatusUnauthorized, "token has been revoked")
				return
			}
		}

		user, err := am.Repository.GetUserByID(ctx, claims.UserID)
		if errors.Is(err, repository.ErrNotFound) {
			abort(gCtx, http.StatusUnauthorized, "user from token no longer exists")
			return
		}
		if err != nil {
			logrus.Errorf("load acting user %d: %v", claims.UserID, err)
			abort(gCtx, http.StatusInternalServerError, "internal server error")
			return
		}

		allowed, err := am.canAccess(ctx, assignedRoles, user, gCtx.Params)
		if err != nil {
			logrus.Errorf("ownership check for user %d: %v", user.ID, err)
			abort(gCtx, http.StatusInternalServerError, "internal server error")
			return
		}
		if !allowed {
			abort(gCtx, http.StatusForbidden, "you don't have permissions to do that")
			return
		}

		gCtx.Set(currentUserKey, user)
		gCtx.Set(tokenClaimsKey, claims)
		gCtx.Next()
	}
}

// canAccess первое сработавшее правило решает, без совпадений доступ запрещён
func (am *AuthMiddleware) canAccess(ctx context.Context, roles []role.Role, user *ds.User, params gin.Params) (bool, error) {
	if user.IsAdmin && role.Has(roles, role.Admin) {
		return true, nil
	}
	if role.Has(roles, role.User) {
		return true, nil
	}
	if !role.Has(roles, role.Owner) {
		return false, nil
	}

	if id, ok := paramID(params, "columnId"); ok {
		return am.Repository.ColumnOwnedBy(ctx, id, user.ID)
	}
	if id, ok := paramID(params, "cardId"); ok {
		return am.Repository.CardOwnedBy(ctx, id, user.ID)
	}
	if id, ok := paramID(params, "commentId"); ok {
		return am.Repository.CommentAuthoredBy(ctx, id, user.ID)
	}
	if id, ok := paramID(params, "id"); ok {
		return id == user.ID, nil
	}

	return false, nil
}

func paramID(params gin.Params, name string) (uint, bool) {
	raw, ok := params.Get(name)
	if !ok {
		return 0, false
	}
	id, err := ParseID(raw)
	if err != nil {
		// параметр есть, но невалиден: никому не принадлежит
		return 0, true
	}
	return id, true
}

func abort(gCtx *gin.Context, status int, message string) {
	gCtx.AbortWithStatusJSON(status, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}
