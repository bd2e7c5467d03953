package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"kanban/internal/app/dto"
	"kanban/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func init() {
	// в ошибках валидации поля называются так же, как в JSON
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Централизованная обработка ошибок
func errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

func internalError(c *gin.Context, err error) {
	logrus.Error(err.Error())
	_ = c.Error(err)
	errorResponse(c, http.StatusInternalServerError, "internal server error")
}

func notFound(c *gin.Context, entity string, id uint) {
	errorResponse(c, http.StatusNotFound, fmt.Sprintf("Couldn't find %s with id %d", entity, id))
}

// bindJSON при ошибке сам отвечает 400
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		validationFailed(c, err)
		return false
	}
	return true
}

func validationFailed(c *gin.Context, err error) {
	response := dto.ValidationErrorResponse{
		Status:  "fail",
		Message: "invalid request body",
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			response.Errors = append(response.Errors, dto.FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
	} else {
		response.Message = "invalid request body: " + err.Error()
	}

	c.JSON(http.StatusBadRequest, response)
}

// pathID параметры уже проверены ValidateIDParams, здесь только разбор
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := middleware.ParseID(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Status:  "fail",
			Message: "invalid path parameter",
			Errors:  []dto.FieldError{{Field: name, Rule: "numeric"}},
		})
		return 0, false
	}
	return id, true
}
