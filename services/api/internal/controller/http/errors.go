package http

import (
	"errors"
	"net/http"

	"brand-sell/pkg/claude"
	"brand-sell/services/api/internal/prompt"
	"brand-sell/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps usecase errors to status codes. Unexpected errors are
// reported as 500 without their details.
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, prompt.ErrIncompleteProduct),
		errors.Is(err, prompt.ErrInvalidOption):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this resource"})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, prompt.ErrUnknownVersion):
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown prompt version"})
	case errors.Is(err, usecase.ErrEmailTaken), errors.Is(err, usecase.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, claude.ErrGeneration):
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed"})
	case errors.Is(err, usecase.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
