package server

import (
	"log/slog"
	"net/http"

	"github.com/alkime/gradients/internal/config"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *slog.Logger
	router *gin.Engine
}

// New creates a new Server instance
func New(cfg *config.Config, logger *slog.Logger) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Configure proxy trust for production (Fly.io)
	if cfg.Env == config.EnvProduction {
		router.TrustedPlatform = gin.PlatformFlyIO
		logger.Debug("Configured trusted platform", "platform", "fly.io")
	}

	server := &Server{
		config: cfg,
		logger: logger,
		router: router,
	}

	// Setup middleware and routes
	setupSecurityMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Run starts the HTTP server
func Run(s *Server) error {
	s.logger.Info("Server listening", "port", s.config.Port)
	return s.router.Run(":" + s.config.Port)
}

// Router exposes the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1/gradient")
	{
		api.GET("/default", s.handleDefault)
		api.POST("/compile", s.handleCompile)
		api.POST("/stops", s.handleAddStop)
		api.DELETE("/stops/:id", s.handleRemoveStop)
		api.PATCH("/stops/:id", s.handleUpdateStop)
		api.POST("/export/:format", s.handleExport)
	}

	// Static editor assets. Registered after the routes, so it only sees
	// requests no route matched.
	s.router.Use(static.Serve("/", static.LocalFile(s.config.StaticDir, true)))
	s.logger.Debug("Serving static files", "dir", s.config.StaticDir)
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "gradients",
	})
}
