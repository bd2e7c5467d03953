package handler

import (
	"errors"
	"fmt"
	"net/http"

	"kanban/internal/app/dto"
	"kanban/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetCards все карточки
// @Summary Список карточек
// @Tags Cards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ds.Card
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/cards [get]
func (h *APIHandler) GetCards(c *gin.Context) {
	cards, err := h.Repository.GetAllCards(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GetCard карточка по id
// @Summary Карточка по id
// @Tags Cards
// @Produce json
// @Param cardId path int true "ID карточки"
// @Success 200 {object} ds.Card
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/cards/{cardId} [get]
func (h *APIHandler) GetCard(c *gin.Context) {
	id, ok := pathID(c, "cardId")
	if !ok {
		return
	}

	card, err := h.Repository.GetCardByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "card", id)
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// DeleteCard удаление карточки с комментариями
// @Summary Удаление карточки
// @Tags Cards
// @Produce json
// @Security BearerAuth
// @Param cardId path int true "ID карточки"
// @Success 200 {object} dto.CardDeletedResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/cards/{cardId} [delete]
func (h *APIHandler) DeleteCard(c *gin.Context) {
	id, ok := pathID(c, "cardId")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	card, err := h.Repository.GetCardByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, dto.CardDeletedResponse{CardDeleted: false})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	deleted, err := h.Repository.DeleteCard(ctx, id)
	if err != nil {
		internalError(c, err)
		return
	}
	if deleted {
		h.removeImage(c, card.ImageURL)
	}
	c.JSON(http.StatusOK, dto.CardDeletedResponse{CardDeleted: deleted})
}

// UpdateCardTitle изменение заголовка
// @Summary Изменение заголовка карточки
// @Tags Cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cardId path int true "ID карточки"
// @Param request body dto.UpdateCardTitleRequest true "Новый заголовок"
// @Success 200 {object} dto.CardUpdatedResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/cards/{cardId}/title [patch]
func (h *APIHandler) UpdateCardTitle(c *gin.Context) {
	id, ok := pathID(c, "cardId")
	if !ok {
		return
	}
	var request dto.UpdateCardTitleRequest
	if !bindJSON(c, &request) {
		return
	}

	updated, err := h.Repository.UpdateCardTitle(c.Request.Context(), id, request.NewCardTitle)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CardUpdatedResponse{CardUpdated: updated})
}

// UpdateCardText изменение текста
// @Summary Изменение текста карточки
// @Tags Cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cardId path int true "ID карточки"
// @Param request body dto.UpdateCardTextRequest true "Новый текст"
// @Success 200 {object} dto.CardUpdatedResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/cards/{cardId}/text [patch]
func (h *APIHandler) UpdateCardText(c *gin.Context) {
	id, ok := pathID(c, "cardId")
	if !ok {
		return
	}
	var request dto.UpdateCardTextRequest
	if !bindJSON(c, &request) {
		return
	}

	updated, err := h.Repository.UpdateCardText(c.Request.Context(), id, request.NewCardText)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CardUpdatedResponse{CardUpdated: updated})
}

// GetCardComments комментарии карточки
// @Summary Комментарии карточки
// @Tags Cards
// @Produce json
// @Param cardId path int true "ID карточки"
// @Success 200 {array} ds.Comment
// @Router /api/cards/{cardId}/comments [get]
func (h *APIHandler) GetCardComments(c *gin.Context) {
	id, ok := pathID(c, "cardId")
	if !ok {
		return
	}

	comments, err := h.Repository.GetCommentsByCard(c.Request.Context(), id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// PostComment комментарий к карточке
// @Summary Добавление комментария
// @Description Автором становится текущий пользователь
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cardId path int true "ID карточки"
// @Param request body dto.CommentRequest true "Текст комментария"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/cards/{cardId}/comments [post]
func (h *APIHandler) PostComment(c *gin.Context) {
	cardID, ok := pathID(c, "cardId")
	if !ok {
		return
	}
	var request dto.CommentRequest
	if !bindJSON(c, &request) {
		return
	}
	actor, ok := actingUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.Repository.GetCardByID(ctx, cardID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c, "card", cardID)
			return
		}
		internalError(c, err)
		return
	}

	comment, err := h.Repository.CreateComment(ctx, cardID, actor.ID, request.Text)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{
		Message: fmt.Sprintf("Successfully created comment with id %d", comment.ID),
		ID:      comment.ID,
	})
}

// UploadCardImage загрузка обложки карточки в MinIO
// @Summary Загрузка изображения карточки
// @Description jpeg, png, gif или webp до 5 МБ; предыдущее изображение удаляется
// @Tags Cards
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param cardId path int true "ID карточки"
// @Param file formData file true "Изображение"
// @Success 200 {object} dto.CardImageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/cards/{cardId}/image [post]
func (h *APIHandler) UploadCardImage(c *gin.Context) {
	id, ok := pathID(c, "cardId")
	if !ok {
		return
	}
	if h.Images == nil {
		errorResponse(c, http.StatusServiceUnavailable, "image storage is not configured")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "file is required")
		return
	}
	data, err := readImage(file)
	if errors.Is(err, errImageTooLarge) || errors.Is(err, errImageNotAllowed) {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	ctx := c.Request.Context()
	card, err := h.Repository.GetCardByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "card", id)
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	objectName, err := h.Images.UploadFile(ctx, data, file.Filename)
	if err != nil {
		internalError(c, fmt.Errorf("upload image for card %d: %w", id, err))
		return
	}

	if _, err := h.Repository.SetCardImage(ctx, id, &objectName); err != nil {
		h.removeImage(c, &objectName)
		internalError(c, err)
		return
	}
	h.removeImage(c, card.ImageURL)

	logrus.Infof("card %d image uploaded: %s", id, objectName)
	c.JSON(http.StatusOK, dto.CardImageResponse{
		Message:  "image uploaded",
		ImageURL: objectName,
	})
}

// GetCardImage редирект на временную ссылку MinIO
// @Summary Изображение карточки
// @Tags Cards
// @Param cardId path int true "ID карточки"
// @Success 302
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/cards/{cardId}/image [get]
func (h *APIHandler) GetCardImage(c *gin.Context) {
	id, ok := pathID(c, "cardId")
	if !ok {
		return
	}
	if h.Images == nil {
		errorResponse(c, http.StatusServiceUnavailable, "image storage is not configured")
		return
	}
	ctx := c.Request.Context()

	card, err := h.Repository.GetCardByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "card", id)
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	if card.ImageURL == nil {
		errorResponse(c, http.StatusNotFound, fmt.Sprintf("card %d has no image", id))
		return
	}

	url, err := h.Images.GetFileURL(ctx, *card.ImageURL)
	if err != nil {
		internalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}
