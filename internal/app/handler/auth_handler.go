package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"kanban/internal/app/dto"
	"kanban/internal/app/middleware"
	"kanban/internal/app/password"
	"kanban/internal/app/repository"
	"kanban/internal/app/token"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TokenRevoker запись отозванных токенов (см. internal/app/redis)
type TokenRevoker interface {
	WriteJWTToBlacklist(ctx context.Context, tokenID string, ttl time.Duration) error
}

type AuthHandler struct {
	Repository *repository.Repository
	Tokens     *token.Service
	Revoker    TokenRevoker // nil: Redis не настроен, logout недоступен
}

func NewAuthHandler(r *repository.Repository, tokens *token.Service, revoker TokenRevoker) *AuthHandler {
	return &AuthHandler{
		Repository: r,
		Tokens:     tokens,
		Revoker:    revoker,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUser регистрация нового пользователя
// @Summary Регистрация пользователя
// @Description Создание обычного (не администратора) пользователя
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.UserCredentials true "Email и пароль"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 409 {object} dto.RegisterResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/users [post]
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var request dto.UserCredentials
	if !bindJSON(c, &request) {
		return
	}
	ctx := c.Request.Context()
	email := normalizeEmail(request.Email)

	// bcrypt дорогой, сначала дешёвая проверка
	exists, err := h.Repository.UserExistsByEmail(ctx, email)
	if err != nil {
		internalError(c, err)
		return
	}
	if exists {
		registrationConflict(c)
		return
	}

	hashedPassword, err := password.Hash(request.Password)
	if err != nil {
		internalError(c, err)
		return
	}

	user, err := h.Repository.CreateUser(ctx, email, hashedPassword, false)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		registrationConflict(c)
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	logrus.Infof("user %d registered", user.ID)
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Registered: true,
		ID:         user.ID,
	})
}

func registrationConflict(c *gin.Context) {
	c.JSON(http.StatusConflict, dto.RegisterResponse{
		Registered: false,
		Error:      "This email is already busy, use another one",
	})
}

// LoginUser аутентификация пользователя
// @Summary Вход в систему
// @Description Возвращает JWT; неверный email и неверный пароль не различаются
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.UserCredentials true "Email и пароль"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.LoginResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/users/login [post]
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var request dto.UserCredentials
	if !bindJSON(c, &request) {
		return
	}

	user, err := h.Repository.GetUserByEmail(c.Request.Context(), normalizeEmail(request.Email))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		internalError(c, err)
		return
	}
	if user == nil || !password.Compare(user.Password, request.Password) {
		c.JSON(http.StatusUnauthorized, dto.LoginResponse{Success: false})
		return
	}

	accessToken, err := h.Tokens.Issue(token.Payload{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success:   true,
		AuthToken: accessToken,
		TokenType: "Bearer",
		ExpiresIn: int(h.Tokens.TTL().Seconds()),
	})
}

// LogoutUser отзыв текущего токена
// @Summary Выход из системы
// @Description jti токена попадает в blacklist Redis до истечения срока действия
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/users/logout [post]
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	if h.Revoker == nil {
		errorResponse(c, http.StatusServiceUnavailable, "token revocation is not configured")
		return
	}
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	// Вычисление TTL до истечения токена
	if claims.ExpiresAt != nil {
		if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
			if err := h.Revoker.WriteJWTToBlacklist(c.Request.Context(), claims.ID, ttl); err != nil {
				internalError(c, err)
				return
			}
		}
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "logged out",
	})
}
