package handler

import (
	"errors"
	"net/http"

	"kanban/internal/app/dto"
	"kanban/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// GetComments все комментарии
// @Summary Список комментариев
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ds.Comment
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/comments [get]
func (h *APIHandler) GetComments(c *gin.Context) {
	comments, err := h.Repository.GetAllComments(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// GetComment комментарий по id
// @Summary Комментарий по id
// @Tags Comments
// @Produce json
// @Param commentId path int true "ID комментария"
// @Success 200 {object} ds.Comment
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/comments/{commentId} [get]
func (h *APIHandler) GetComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	comment, err := h.Repository.GetCommentByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		notFound(c, "comment", id)
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// UpdateComment изменение текста комментария
// @Summary Изменение комментария
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param commentId path int true "ID комментария"
// @Param request body dto.CommentRequest true "Новый текст"
// @Success 200 {object} dto.CommentUpdatedResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/comments/{commentId} [patch]
func (h *APIHandler) UpdateComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	var request dto.CommentRequest
	if !bindJSON(c, &request) {
		return
	}

	updated, err := h.Repository.UpdateCommentText(c.Request.Context(), id, request.Text)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CommentUpdatedResponse{CommentUpdated: updated})
}

// DeleteComment удаление комментария
// @Summary Удаление комментария
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param commentId path int true "ID комментария"
// @Success 200 {object} dto.CommentDeletedResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/comments/{commentId} [delete]
func (h *APIHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	deleted, err := h.Repository.DeleteComment(c.Request.Context(), id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CommentDeletedResponse{CommentDeleted: deleted})
}
