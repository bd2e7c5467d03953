package handler

import (
	"net/http"

	"kanban/internal/app/ds"
	"kanban/internal/app/middleware"
	"kanban/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	Images      ImageStore // nil: MinIO не настроен
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, images ImageStore, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		Images:      images,
		AuthHandler: authHandler,
	}
}

// actingUser пользователь, положенный в контекст WithAuthCheck
func actingUser(c *gin.Context) (*ds.User, bool) {
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		logrus.Warn("acting user not found in context")
		errorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return nil, false
	}
	return user, true
}

// removeImage ошибки удаления объекта только логируются
func (h *APIHandler) removeImage(c *gin.Context, name *string) {
	if name == nil || h.Images == nil {
		return
	}
	if err := h.Images.DeleteFile(c.Request.Context(), *name); err != nil {
		logrus.Warnf("failed to delete image %s: %v", *name, err)
	}
}

func (h *APIHandler) removeImages(c *gin.Context, names []string) {
	for i := range names {
		h.removeImage(c, &names[i])
	}
}
