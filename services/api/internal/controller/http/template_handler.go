package http

import (
	"encoding/json"
	"net/http"

	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	templateUseCase usecase.TemplateUseCase
}

func NewTemplateHandler(templateUseCase usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{
		templateUseCase: templateUseCase,
	}
}

type TemplateRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Slug        string          `json:"slug"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	PreviewURL  string          `json:"preview_url"`
	Layout      json.RawMessage `json:"layout" swaggertype:"object"`
}

// List godoc
// @Summary      List templates
// @Tags         templates
// @Produce      json
// @Param        category query string false "landing or social"
// @Success      200  {array}   entity.Template
// @Failure      400  {object}  ErrorResponse
// @Router       /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templateUseCase.List(entity.TemplateCategory(c.Query("category")))
	if err != nil {
		respondError(c, err, "Template not found")
		return
	}

	c.JSON(http.StatusOK, templates)
}

// Get godoc
// @Summary      Get a template
// @Tags         templates
// @Produce      json
// @Param        id path string true "Template ID"
// @Success      200  {object}  entity.Template
// @Failure      404  {object}  ErrorResponse
// @Router       /template/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	template, err := h.templateUseCase.Get(c.Param("id"))
	if err != nil {
		respondError(c, err, "Template not found")
		return
	}

	c.JSON(http.StatusOK, template)
}

// Create godoc
// @Summary      Add a template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        request body TemplateRequest true "Template"
// @Success      201  {object}  entity.Template
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateUseCase.Create(&entity.Template{
		Name:        req.Name,
		Slug:        req.Slug,
		Category:    entity.TemplateCategory(req.Category),
		Description: req.Description,
		PreviewURL:  req.PreviewURL,
		Layout:      req.Layout,
	})
	if err != nil {
		respondError(c, err, "Template not found")
		return
	}

	c.JSON(http.StatusCreated, template)
}
