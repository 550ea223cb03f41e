package server

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/nulzo/modeldocs/internal/config"
	"github.com/nulzo/modeldocs/internal/docs"
	"github.com/nulzo/modeldocs/internal/server/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// DocService is the slice of the generator the preview server needs.
type DocService interface {
	Generate(ctx context.Context) (int, error)
	Catalog(ctx context.Context) ([]docs.Row, error)
	OutputPath() string
}

// Server exposes the generated documentation over HTTP for local review.
type Server struct {
	router  *gin.Engine
	config  *config.Config
	logger  *zap.Logger
	service DocService
}

func New(cfg *config.Config, logger *zap.Logger, service DocService) *Server {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(ginzap.RecoveryWithZap(logger, true))
	engine.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	engine.Use(middleware.RequestID())
	if cfg.Tracing.Enabled {
		engine.Use(otelgin.Middleware("modeldocs-preview"))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, logger)
	engine.Use(limiter.Middleware())

	s := &Server{
		router:  engine,
		config:  cfg,
		logger:  logger,
		service: service,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	group := s.router.Group("/docs")
	group.GET("/models", s.handleDocument)
	group.GET("/catalog", s.handleCatalog)
	group.POST("/refresh", s.handleRefresh)
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	s.logger.Info("Starting docs preview server", zap.String("port", s.config.Server.Port))
	return s.router.Run(":" + s.config.Server.Port)
}
