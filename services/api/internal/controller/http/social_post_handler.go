package http

import (
	"net/http"

	"brand-sell/pkg/middleware"
	"brand-sell/services/api/internal/entity"
	"brand-sell/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SocialPostHandler struct {
	socialPostUseCase usecase.SocialPostUseCase
}

func NewSocialPostHandler(socialPostUseCase usecase.SocialPostUseCase) *SocialPostHandler {
	return &SocialPostHandler{
		socialPostUseCase: socialPostUseCase,
	}
}

type ComposePostPromptRequest struct {
	ProductID       string `json:"product_id" binding:"required"`
	Platform        string `json:"platform" binding:"required"`
	Objective       string `json:"objective" binding:"required"`
	Length          string `json:"length" binding:"required"`
	Tone            string `json:"tone" binding:"required"`
	IncludeHashtags bool   `json:"include_hashtags"`
	IncludeEmojis   bool   `json:"include_emojis"`
	CustomURL       string `json:"custom_url"`
}

// SavePostRequest keeps a generated post. Omitting hashtags extracts them
// from the content; an empty list stores none.
type SavePostRequest struct {
	ProductID string   `json:"product_id" binding:"required"`
	Platform  string   `json:"platform" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	Hashtags  []string `json:"hashtags"`
	Tone      string   `json:"tone"`
	Objective string   `json:"objective"`
}

type EditPostRequest struct {
	Content  *string  `json:"content"`
	Hashtags []string `json:"hashtags"`
}

// ComposePrompt godoc
// @Summary      Compose a social post prompt
// @Tags         social-posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ComposePostPromptRequest true "Product and presentation options"
// @Success      200  {object}  PromptResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /social-posts/prompt [post]
func (h *SocialPostHandler) ComposePrompt(c *gin.Context) {
	var req ComposePostPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generated, err := h.socialPostUseCase.ComposePrompt(c.GetString(middleware.UserIDKey), req.ProductID, entity.PostOptions{
		Platform:        entity.Platform(req.Platform),
		Objective:       entity.Objective(req.Objective),
		Length:          entity.PostLength(req.Length),
		Tone:            entity.PostTone(req.Tone),
		IncludeHashtags: req.IncludeHashtags,
		IncludeEmojis:   req.IncludeEmojis,
		CustomURL:       req.CustomURL,
	})
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, PromptResponse{Prompt: generated})
}

// Create godoc
// @Summary      Save a social post
// @Tags         social-posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SavePostRequest true "Post"
// @Success      201  {object}  entity.SocialPost
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /social-posts [post]
func (h *SocialPostHandler) Create(c *gin.Context) {
	var req SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.socialPostUseCase.Save(c.GetString(middleware.UserIDKey), usecase.SavePost{
		ProductID: req.ProductID,
		Platform:  entity.Platform(req.Platform),
		Content:   req.Content,
		Hashtags:  req.Hashtags,
		Tone:      entity.PostTone(req.Tone),
		Objective: entity.Objective(req.Objective),
	})
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// List godoc
// @Summary      List my saved posts
// @Tags         social-posts
// @Produce      json
// @Security     BearerAuth
// @Param        product_id query string false "Only posts of this product"
// @Success      200  {array}   entity.SocialPost
// @Failure      401  {object}  ErrorResponse
// @Router       /social-posts [get]
func (h *SocialPostHandler) List(c *gin.Context) {
	posts, err := h.socialPostUseCase.List(c.GetString(middleware.UserIDKey), c.Query("product_id"))
	if err != nil {
		respondError(c, err, "Post not found")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Update godoc
// @Summary      Edit a saved post
// @Description  Change content or hashtags. The post is marked as edited.
// @Tags         social-posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body EditPostRequest true "Fields to change"
// @Success      200  {object}  entity.SocialPost
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /social-posts/{id} [patch]
func (h *SocialPostHandler) Update(c *gin.Context) {
	var req EditPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.socialPostUseCase.Edit(c.GetString(middleware.UserIDKey), c.Param("id"), usecase.EditPost{
		Content:  req.Content,
		Hashtags: req.Hashtags,
	})
	if err != nil {
		respondError(c, err, "Post not found")
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary      Delete a saved post
// @Tags         social-posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  MessageResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /social-posts/{id} [delete]
func (h *SocialPostHandler) Delete(c *gin.Context) {
	if err := h.socialPostUseCase.Delete(c.GetString(middleware.UserIDKey), c.Param("id")); err != nil {
		respondError(c, err, "Post not found")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Post deleted successfully"})
}
