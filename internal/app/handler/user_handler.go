package handler

import (
	"errors"
	"fmt"
	"net/http"

	"kanban/internal/app/ds"
	"kanban/internal/app/dto"
	"kanban/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func userResponse(u *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:      u.ID,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}

// GetUsers список пользователей
// @Summary Список пользователей
// @Description Только для администратора, пароли не возвращаются
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/users [get]
func (h *APIHandler) GetUsers(c *gin.Context) {
	users, err := h.Repository.GetAllUsers(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		response = append(response, userResponse(&users[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetUser один пользователь
// @Summary Пользователь по id
// @Tags Users
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [get]
func (h *APIHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.Repository.GetUserByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "user", id)
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}

// DeleteUser удаление пользователя вместе с его колонками, карточками и комментариями
// @Summary Удаление пользователя
// @Description Только для администратора, удалить самого себя нельзя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.UserDeletedResponse
// @Failure 403 {object} dto.UserDeletedResponse
// @Router /api/users/{id} [delete]
func (h *APIHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actingUser(c)
	if !ok {
		return
	}

	if actor.ID == id {
		c.JSON(http.StatusForbidden, dto.UserDeletedResponse{
			UserDeleted: false,
			Message:     "You can't delete yourself",
		})
		return
	}

	deleted, images, err := h.Repository.DeleteUser(c.Request.Context(), id)
	if err != nil {
		internalError(c, err)
		return
	}
	h.removeImages(c, images)
	if deleted {
		logrus.Infof("user %d deleted by admin %d", id, actor.ID)
	}

	c.JSON(http.StatusOK, dto.UserDeletedResponse{UserDeleted: deleted})
}

// GetUserColumns колонки пользователя
// @Summary Колонки пользователя
// @Tags Users
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {array} ds.Column
// @Router /api/users/{id}/columns [get]
func (h *APIHandler) GetUserColumns(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	columns, err := h.Repository.GetColumnsByOwner(c.Request.Context(), id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, columns)
}

// CreateColumn создание колонки
// @Summary Создание колонки
// @Description Колонку можно создать только от своего имени
// @Tags Columns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID владельца"
// @Param request body dto.CreateColumnRequest true "Название колонки"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/users/{id}/columns [post]
func (h *APIHandler) CreateColumn(c *gin.Context) {
	ownerID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var request dto.CreateColumnRequest
	if !bindJSON(c, &request) {
		return
	}

	column, err := h.Repository.CreateColumn(c.Request.Context(), ownerID, request.ColumnTitle)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{
		Message: fmt.Sprintf("Successfully created column with id %d", column.ID),
		ID:      column.ID,
	})
}
