package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mveu/events-api/internal/handler/http/dto"
	"github.com/mveu/events-api/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Message: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// HandleUsecaseError maps the domain error taxonomy to an HTTP response.
// Anything outside the taxonomy is masked as an internal error; details stay
// in the server log.
func HandleUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrAlreadyRegistered),
		errors.Is(err, usecase.ErrNotRegistered),
		errors.Is(err, usecase.ErrConflict):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, usecase.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
