package http

import (
	"net/http"
	"time"

	"brand-sell/pkg/jwt"
	"brand-sell/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every controller the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Product    *ProductHandler
	File       *FileHandler
	Template   *TemplateHandler
	Generation *GenerationHandler
	SocialPost *SocialPostHandler
}

type RouterConfig struct {
	JWTService     *jwt.Service
	Revocations    middleware.RevocationChecker
	RedisClient    *redis.Client
	CORSOrigins    []string
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	r := gin.Default()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		limited := api.Group("")
		limited.Use(middleware.RateLimitMiddleware(cfg.RedisClient, cfg.AuthRateLimit, cfg.AuthRateWindow))
		limited.POST("/login", h.Auth.Login)
		limited.POST("/register", h.Auth.Register)

		api.GET("/product-info/:id", h.Product.Get)
		api.GET("/generate-prompt/:version/:productId", h.Product.GeneratePrompt)

		// Download center
		api.GET("/files", h.File.List)
		api.POST("/files", h.File.Create)
		api.DELETE("/files/:id", h.File.Delete)
		api.PATCH("/files/:id/download", h.File.IncrementDownload)

		api.GET("/templates", h.Template.List)
		api.POST("/templates", h.Template.Create)
		api.GET("/template/:id", h.Template.Get)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg.JWTService, cfg.Revocations))
		{
			protected.GET("/me", h.Auth.Me)
			protected.DELETE("/me", h.Auth.DeleteMe)
			protected.POST("/logout", h.Auth.Logout)

			protected.POST("/product-info", h.Product.Create)
			protected.GET("/user/products", h.Product.ListMine)

			protected.POST("/generate-claude", h.Generation.Generate)

			protected.POST("/social-posts/prompt", h.SocialPost.ComposePrompt)
			protected.POST("/social-posts", h.SocialPost.Create)
			protected.GET("/social-posts", h.SocialPost.List)
			protected.PATCH("/social-posts/:id", h.SocialPost.Update)
			protected.DELETE("/social-posts/:id", h.SocialPost.Delete)
		}
	}

	return r
}
