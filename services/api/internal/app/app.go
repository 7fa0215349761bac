package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brand-sell/pkg/cache"
	"brand-sell/pkg/claude"
	"brand-sell/pkg/cloudinary"
	"brand-sell/pkg/config"
	"brand-sell/pkg/database"
	"brand-sell/pkg/jwt"
	"brand-sell/pkg/logger"
	"brand-sell/pkg/middleware"
	"brand-sell/pkg/s3"
	apiHTTP "brand-sell/services/api/internal/controller/http"
	"brand-sell/services/api/internal/model"
	"brand-sell/services/api/internal/repo/persistent"
	"brand-sell/services/api/internal/repo/revocation"
	"brand-sell/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "brand-sell/services/api/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	storage     usecase.Storage
	generator   *claude.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if cfg.DBAutoMigrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			log.Error("Failed to migrate database: %v", err)
			return nil, err
		}
		log.Info("Database schema migrated")
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Without redis logouts are not enforced and auth is not rate limited.
		log.Warn("Failed to connect to redis: %v (continuing without token revocation)", err)
		redisClient = nil
	}

	if cfg.AnthropicAPIKey == "" {
		log.Warn("ANTHROPIC_API_KEY is empty, generation requests will fail")
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		storage:     newStorage(cfg, log),
		generator:   claude.NewClient(cfg),
		jwtService:  jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL),
	}, nil
}

// newStorage returns nil when the configured backend cannot be reached; the
// download center then only accepts external links.
func newStorage(cfg *config.Config, log *logger.Logger) usecase.Storage {
	switch cfg.StorageDriver {
	case "cloudinary":
		client, err := cloudinary.NewClient(cfg)
		if err != nil {
			log.Warn("Failed to create Cloudinary client: %v (uploads disabled)", err)
			return nil
		}
		return client
	default:
		client, err := s3.NewClient(cfg)
		if err != nil {
			log.Warn("Failed to create S3 client: %v (uploads disabled)", err)
			return nil
		}
		return client
	}
}

func (a *App) Run() error {
	gin.SetMode(gin.ReleaseMode)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	productRepo := persistent.NewProductInfoRepository(a.db)
	postRepo := persistent.NewSocialPostRepository(a.db)
	fileRepo := persistent.NewFileRepository(a.db)
	templateRepo := persistent.NewTemplateRepository(a.db)
	revocations := revocation.NewStore(a.redisClient)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, revocations, a.log)
	productUseCase := usecase.NewProductUseCase(productRepo, a.log)
	fileUseCase := usecase.NewFileUseCase(fileRepo, a.storage, a.log)
	templateUseCase := usecase.NewTemplateUseCase(templateRepo, a.log)
	generationUseCase := usecase.NewGenerationUseCase(a.generator, a.log)
	socialPostUseCase := usecase.NewSocialPostUseCase(postRepo, productRepo, a.log)

	var checker middleware.RevocationChecker
	if revocations.Enabled() {
		checker = revocations
	}

	r := apiHTTP.NewRouter(apiHTTP.RouterConfig{
		JWTService:     a.jwtService,
		Revocations:    checker,
		RedisClient:    a.redisClient,
		CORSOrigins:    a.cfg.CORSOrigins,
		AuthRateLimit:  a.cfg.AuthRateLimit,
		AuthRateWindow: a.cfg.AuthRateWindow,
	}, apiHTTP.Handlers{
		Auth:       apiHTTP.NewAuthHandler(authUseCase),
		Product:    apiHTTP.NewProductHandler(productUseCase),
		File:       apiHTTP.NewFileHandler(fileUseCase),
		Template:   apiHTTP.NewTemplateHandler(templateUseCase),
		Generation: apiHTTP.NewGenerationHandler(generationUseCase),
		SocialPost: apiHTTP.NewSocialPostHandler(socialPostUseCase),
	})

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Brand&Sell API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down Brand&Sell API...")
}

func (a *App) Shutdown() error {
	// Generation calls can take a while; give them time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	if err := database.Close(a.db); err != nil {
		a.log.Error("Error closing database: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Brand&Sell API exited")
	return shutdownErr
}
