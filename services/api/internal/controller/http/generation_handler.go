package http

import (
	"context"
	"errors"
	"net/http"

	"brand-sell/pkg/middleware"
	"brand-sell/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GenerationHandler struct {
	generationUseCase usecase.GenerationUseCase
}

func NewGenerationHandler(generationUseCase usecase.GenerationUseCase) *GenerationHandler {
	return &GenerationHandler{
		generationUseCase: generationUseCase,
	}
}

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Generate godoc
// @Summary      Generate with Claude
// @Description  Forward the prompt to the model and return the provider's response body unchanged. The generated text is content[0].text.
// @Tags         generation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateRequest true "Prompt"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Router       /generate-claude [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A client that goes away does not abort the provider call; CLAUDE_TIMEOUT
	// still bounds it.
	raw, err := h.generationUseCase.Generate(context.WithoutCancel(c.Request.Context()), c.GetString(middleware.UserIDKey), req.Prompt)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}
