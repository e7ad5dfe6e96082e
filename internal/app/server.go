// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"campus_lostfound_backend/internal/auth"
	"campus_lostfound_backend/internal/category"
	"campus_lostfound_backend/internal/common"
	"campus_lostfound_backend/internal/config"
	"campus_lostfound_backend/internal/jobs"
	"campus_lostfound_backend/internal/matching"
	"campus_lostfound_backend/internal/middleware"
	"campus_lostfound_backend/internal/notification"
	"campus_lostfound_backend/internal/report"
	"campus_lostfound_backend/internal/shared"
	"campus_lostfound_backend/internal/stats"
	"campus_lostfound_backend/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	// Handlers
	userHandler         *user.Handler
	authHandler         *auth.Handler
	categoryHandler     *category.Handler
	reportHandler       *report.Handler
	matchingHandler     *matching.Handler
	notificationHandler *notification.Handler
	statsHandler        *stats.Handler

	// Jobs
	notificationCleanupJob *jobs.NotificationCleanupJob

	// Middleware instances
	authMW      gin.HandlerFunc
	adminRoleMW gin.HandlerFunc
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	userHandler *user.Handler,
	authHandler *auth.Handler,
	categoryHandler *category.Handler,
	reportHandler *report.Handler,
	matchingHandler *matching.Handler,
	notificationHandler *notification.Handler,
	statsHandler *stats.Handler,
	notificationCleanupJob *jobs.NotificationCleanupJob,
	tokenService shared.TokenService,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	// CORS Middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	// Create middleware instances
	authMW := middleware.AuthMiddleware(tokenService, logger.Named("AuthMiddleware"))
	adminRoleMW := middleware.RoleAuthMiddleware(common.RoleAdmin)

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Campus Lost & Found API is healthy!"})
	})

	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1)
	userHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	categoryHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	reportHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	matchingHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	notificationHandler.RegisterRoutes(v1, authMW)
	statsHandler.RegisterRoutes(v1, authMW, adminRoleMW)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:             httpServer,
		router:                 router,
		cfg:                    cfg,
		logger:                 logger,
		userHandler:            userHandler,
		authHandler:            authHandler,
		categoryHandler:        categoryHandler,
		reportHandler:          reportHandler,
		matchingHandler:        matchingHandler,
		notificationHandler:    notificationHandler,
		statsHandler:           statsHandler,
		notificationCleanupJob: notificationCleanupJob,
		authMW:                 authMW,
		adminRoleMW:            adminRoleMW,
	}, nil
}

func (s *Server) Start() error {
	if s.notificationCleanupJob != nil {
		if err := s.notificationCleanupJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start notification cleanup job", zap.Error(err))
		}
	} else {
		s.logger.Info("Notification cleanup job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped gracefully or an error occurred")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.notificationCleanupJob != nil {
		s.notificationCleanupJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
