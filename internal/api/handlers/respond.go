package handlers

import (
	"net/http"

	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"
	"github.com/RS-Priyanshu/RSIH/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// MessageResponse represents a standard API message response
type MessageResponse struct {
	Message string `json:"message" example:"operation completed"`
}

// respondError maps the error taxonomy to HTTP statuses. Unexpected errors
// become a generic 500; the underlying message is logged, never returned.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err), apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithField("path", c.FullPath()).Errorf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
