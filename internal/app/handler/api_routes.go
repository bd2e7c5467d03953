package handler

import (
	"net/http"

	"kanban/internal/app/middleware"
	"kanban/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	api := router.Group("/api")
	api.Use(middleware.ValidateIDParams())

	// ============ Пользователи ============
	users := api.Group("/users")
	{
		users.GET("", authMiddleware.WithAuthCheck(role.Admin), h.GetUsers)
		users.POST("", limiter.Middleware(), h.AuthHandler.RegisterUser)
		users.POST("/login", limiter.Middleware(), h.AuthHandler.LoginUser)
		users.POST("/logout", authMiddleware.WithAuthCheck(role.User), h.AuthHandler.LogoutUser)

		users.GET("/:id", h.GetUser)
		users.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteUser)
		users.GET("/:id/columns", h.GetUserColumns)
		users.POST("/:id/columns", authMiddleware.WithAuthCheck(role.Owner), h.CreateColumn)
	}

	// ============ Колонки ============
	columns := api.Group("/columns")
	{
		columns.GET("", authMiddleware.WithAuthCheck(role.Admin), h.GetColumns)
		columns.GET("/:columnId", h.GetColumn)
		columns.PATCH("/:columnId", authMiddleware.WithAuthCheck(role.Owner), h.UpdateColumn)
		columns.DELETE("/:columnId", authMiddleware.WithAuthCheck(role.Owner, role.Admin), h.DeleteColumn)
		columns.GET("/:columnId/cards", h.GetColumnCards)
		columns.POST("/:columnId/cards", authMiddleware.WithAuthCheck(role.User), h.CreateCard)
	}

	// ============ Карточки ============
	cards := api.Group("/cards")
	{
		cards.GET("", authMiddleware.WithAuthCheck(role.Admin), h.GetCards)
		cards.GET("/:cardId", h.GetCard)
		cards.DELETE("/:cardId", authMiddleware.WithAuthCheck(role.Owner, role.Admin), h.DeleteCard)
		cards.PATCH("/:cardId/title", authMiddleware.WithAuthCheck(role.Owner), h.UpdateCardTitle)
		cards.PATCH("/:cardId/text", authMiddleware.WithAuthCheck(role.Owner), h.UpdateCardText)
		cards.GET("/:cardId/comments", h.GetCardComments)
		cards.POST("/:cardId/comments", authMiddleware.WithAuthCheck(role.User), h.PostComment)
		cards.POST("/:cardId/image", authMiddleware.WithAuthCheck(role.Owner), h.UploadCardImage)
		cards.GET("/:cardId/image", h.GetCardImage)
	}

	// ============ Комментарии ============
	comments := api.Group("/comments")
	{
		comments.GET("", authMiddleware.WithAuthCheck(role.Admin), h.GetComments)
		comments.GET("/:commentId", h.GetComment)
		comments.PATCH("/:commentId", authMiddleware.WithAuthCheck(role.Owner), h.UpdateComment)
		comments.DELETE("/:commentId", authMiddleware.WithAuthCheck(role.Admin, role.Owner), h.DeleteComment)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
