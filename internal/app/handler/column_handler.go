package handler

import (
	"errors"
	"fmt"
	"net/http"

	"kanban/internal/app/dto"
	"kanban/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// GetColumns все колонки
// @Summary Список колонок
// @Tags Columns
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ds.Column
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/columns [get]
func (h *APIHandler) GetColumns(c *gin.Context) {
	columns, err := h.Repository.GetAllColumns(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, columns)
}

// GetColumn колонка по id
// @Summary Колонка по id
// @Tags Columns
// @Produce json
// @Param columnId path int true "ID колонки"
// @Success 200 {object} ds.Column
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/columns/{columnId} [get]
func (h *APIHandler) GetColumn(c *gin.Context) {
	id, ok := pathID(c, "columnId")
	if !ok {
		return
	}

	column, err := h.Repository.GetColumnByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "column", id)
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, column)
}

// UpdateColumn переименование колонки
// @Summary Изменение названия колонки
// @Tags Columns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param columnId path int true "ID колонки"
// @Param request body dto.UpdateColumnRequest true "Новое название"
// @Success 200 {object} dto.ColumnUpdatedResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/columns/{columnId} [patch]
func (h *APIHandler) UpdateColumn(c *gin.Context) {
	id, ok := pathID(c, "columnId")
	if !ok {
		return
	}
	var request dto.UpdateColumnRequest
	if !bindJSON(c, &request) {
		return
	}

	updated, err := h.Repository.UpdateColumnTitle(c.Request.Context(), id, request.NewColumnTitle)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ColumnUpdatedResponse{ColumnUpdated: updated})
}

// DeleteColumn удаление колонки с карточками и их комментариями
// @Summary Удаление колонки
// @Tags Columns
// @Produce json
// @Security BearerAuth
// @Param columnId path int true "ID колонки"
// @Success 200 {object} dto.ColumnDeletedResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/columns/{columnId} [delete]
func (h *APIHandler) DeleteColumn(c *gin.Context) {
	id, ok := pathID(c, "columnId")
	if !ok {
		return
	}

	deleted, images, err := h.Repository.DeleteColumn(c.Request.Context(), id)
	if err != nil {
		internalError(c, err)
		return
	}
	h.removeImages(c, images)
	c.JSON(http.StatusOK, dto.ColumnDeletedResponse{ColumnDeleted: deleted})
}

// GetColumnCards карточки колонки
// @Summary Карточки колонки
// @Tags Columns
// @Produce json
// @Param columnId path int true "ID колонки"
// @Success 200 {array} ds.Card
// @Router /api/columns/{columnId}/cards [get]
func (h *APIHandler) GetColumnCards(c *gin.Context) {
	id, ok := pathID(c, "columnId")
	if !ok {
		return
	}

	cards, err := h.Repository.GetCardsByColumn(c.Request.Context(), id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// CreateCard создание карточки в колонке
// @Summary Создание карточки
// @Description Владельцем карточки становится текущий пользователь
// @Tags Cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param columnId path int true "ID колонки"
// @Param request body dto.CreateCardRequest true "Заголовок и текст"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/columns/{columnId}/cards [post]
func (h *APIHandler) CreateCard(c *gin.Context) {
	columnID, ok := pathID(c, "columnId")
	if !ok {
		return
	}
	var request dto.CreateCardRequest
	if !bindJSON(c, &request) {
		return
	}
	actor, ok := actingUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.Repository.GetColumnByID(ctx, columnID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c, "column", columnID)
			return
		}
		internalError(c, err)
		return
	}

	card, err := h.Repository.CreateCard(ctx, columnID, actor.ID, request.CardTitle, request.CardText)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{
		Message: fmt.Sprintf("Successfully created card with id %d", card.ID),
		ID:      card.ID,
	})
}
