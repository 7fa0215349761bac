package http

import (
	"net/http"

	"brand-sell/pkg/middleware"
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/prompt"
	"brand-sell/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productUseCase usecase.ProductUseCase
}

func NewProductHandler(productUseCase usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// ProductInfoRequest holds the writable product fields. Owner and id come
// from the server.
type ProductInfoRequest struct {
	Name              string `json:"name"`
	Goal              string `json:"goal"`
	Price             string `json:"price"`
	Audience          string `json:"audience"`
	AwarenessLevel    string `json:"awarenessLevel"`
	Problems          string `json:"problems"`
	Solution          string `json:"solution"`
	Benefits          string `json:"benefits"`
	USP               string `json:"usp"`
	Testimonials      string `json:"testimonials"`
	Features          string `json:"features"`
	Guarantee         string `json:"guarantee"`
	CTA               string `json:"cta"`
	Tone              string `json:"tone"`
	References        string `json:"references"`
	MainKeyword       string `json:"mainkeyword"`
	SecondaryKeywords string `json:"secondarykeywords"`
	Location          string `json:"location"`
	Brand             string `json:"brand"`
	PrimaryColor      string `json:"primaryColor"`
	SecondaryColor    string `json:"secondaryColor"`
	AccentColor       string `json:"accentColor"`
	BackgroundColor   string `json:"backgroundColor"`
	TextColor         string `json:"textColor"`
}

func (r *ProductInfoRequest) toEntity() *entity.ProductInfo {
	return &entity.ProductInfo{
		Name:              r.Name,
		Goal:              r.Goal,
		Price:             r.Price,
		Audience:          r.Audience,
		AwarenessLevel:    r.AwarenessLevel,
		Problems:          r.Problems,
		Solution:          r.Solution,
		Benefits:          r.Benefits,
		USP:               r.USP,
		Testimonials:      r.Testimonials,
		Features:          r.Features,
		Guarantee:         r.Guarantee,
		CTA:               r.CTA,
		Tone:              r.Tone,
		References:        r.References,
		MainKeyword:       r.MainKeyword,
		SecondaryKeywords: r.SecondaryKeywords,
		Location:          r.Location,
		Brand:             r.Brand,
		PrimaryColor:      r.PrimaryColor,
		SecondaryColor:    r.SecondaryColor,
		AccentColor:       r.AccentColor,
		BackgroundColor:   r.BackgroundColor,
		TextColor:         r.TextColor,
	}
}

type ProductInfoResponse struct {
	ProductInfo     *entity.ProductInfo `json:"product_info"`
	GeneratedPrompt string              `json:"generated_prompt"`
}

type PromptResponse struct {
	Prompt string `json:"prompt"`
}

// Create godoc
// @Summary      Save product info
// @Description  Store the product form and return the composed landing page prompt
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        version query string false "Prompt version (v1, v2)" default(v1)
// @Param        request body ProductInfoRequest true "Product info"
// @Success      201  {object}  ProductInfoResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /product-info [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version := prompt.Version(c.DefaultQuery("version", string(prompt.V1)))
	product, generated, err := h.productUseCase.Create(c.GetString(middleware.UserIDKey), req.toEntity(), version)
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusCreated, ProductInfoResponse{
		ProductInfo:     product,
		GeneratedPrompt: generated,
	})
}

// Get godoc
// @Summary      Get product info
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200  {object}  entity.ProductInfo
// @Failure      404  {object}  ErrorResponse
// @Router       /product-info/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productUseCase.Get(c.Param("id"))
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListMine godoc
// @Summary      List my products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.ProductInfo
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /user/products [get]
func (h *ProductHandler) ListMine(c *gin.Context) {
	products, err := h.productUseCase.ListByUser(c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GeneratePrompt godoc
// @Summary      Compose a landing page prompt
// @Description  Compose the prompt of the given version for a stored product. No model call is made.
// @Tags         products
// @Produce      json
// @Param        version   path string true "Prompt version (v1, v2)"
// @Param        productId path string true "Product ID"
// @Success      200  {object}  PromptResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /generate-prompt/{version}/{productId} [get]
func (h *ProductHandler) GeneratePrompt(c *gin.Context) {
	generated, err := h.productUseCase.GeneratePrompt(prompt.Version(c.Param("version")), c.Param("productId"))
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, PromptResponse{Prompt: generated})
}
