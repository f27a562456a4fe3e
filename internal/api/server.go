// Package api exposes the dashboard backend over HTTP: catalog queries for
// the selection widgets, descriptor reports per (biopsy, ROI), and the
// modality image endpoints with their upload boundary.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/optic-derm-explorer/internal/catalog"
	"github.com/optic-derm-explorer/internal/domain"
	"github.com/optic-derm-explorer/internal/middleware"
	"github.com/optic-derm-explorer/internal/service"
	"github.com/optic-derm-explorer/internal/session"
)

// Server represents the HTTP server
type Server struct {
	cfg         *domain.Config
	logger      *logrus.Logger
	catalog     *catalog.Catalog
	descriptors *service.DescriptorService
	explainer   *service.ExplanationService
	uploads     *session.Store
	router      *gin.Engine
	server      *http.Server
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *domain.Config, logger *logrus.Logger) *Server {
	// Set Gin mode based on log level
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))

	server := &Server{
		cfg:         cfg,
		logger:      logger,
		catalog:     catalog.New(),
		descriptors: service.NewDescriptorService(logger),
		explainer:   service.NewExplanationService(),
		uploads:     session.NewStore(cfg.Session.Capacity, cfg.Session.TTL),
		router:      router,
	}

	server.setupRoutes()

	return server
}

// Router exposes the configured gin engine, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.cfg.Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	uploadLimiter := rate.NewLimiter(rate.Limit(s.cfg.Upload.RatePerSecond), s.cfg.Upload.Burst)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/patients", s.handlePatients)
		v1.GET("/patients/:patient_id", s.handlePatient)
		v1.GET("/rois", s.handleROIs)
		v1.GET("/modalities", s.handleModalities)
		v1.GET("/reference", s.handleReference)
		v1.GET("/descriptors", s.handleDescriptors)
		v1.GET("/images/:biopsy_id/:modality", s.handleImage)
		v1.POST("/images/:biopsy_id/:modality", middleware.UploadRateLimit(uploadLimiter), s.handleUpload)
		v1.DELETE("/images/:biopsy_id", s.handleClearUploads)
	}
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	})
}

// abortWithError writes a structured error response and stops the handler
// chain.
func (s *Server) abortWithError(c *gin.Context, status int, code, message, details string) {
	c.AbortWithStatusJSON(status, domain.NewAPIError(code, message, details, c.GetString("correlation_id")))
}
