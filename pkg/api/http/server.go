package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aescanero/theoryq/pkg/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// QuestionService produces the pair returned by the question endpoint
type QuestionService interface {
	Get(ctx context.Context) (domain.Pair, error)
	Mode() string
}

// RequestObserver records per-request HTTP metrics
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Server represents the HTTP API server
type Server struct {
	router    *gin.Engine
	server    *http.Server
	questions QuestionService
	logger    *zap.Logger
}

// Config holds HTTP server configuration
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Questions    QuestionService
	Logger       *zap.Logger

	// Observer and Gatherer are optional. /metrics is only mounted when
	// Gatherer is set.
	Observer RequestObserver
	Gatherer prometheus.Gatherer
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(cfg.Logger, cfg.Observer))
	router.Use(corsMiddleware())

	s := &Server{
		router:    router,
		questions: cfg.Questions,
		logger:    cfg.Logger,
	}

	s.setupRoutes(cfg.Gatherer)

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	// Question endpoint polled by the exam platform
	s.router.GET("/", s.handleGetQuestion)

	// Health check
	s.router.GET("/health", s.handleHealth)

	if gatherer != nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

// Handler returns the root handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
