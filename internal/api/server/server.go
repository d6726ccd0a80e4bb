package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-assignment/internal/adapter"
	"github.com/feral-file/ff-assignment/internal/api/middleware"
	"github.com/feral-file/ff-assignment/internal/api/rest"
	"github.com/feral-file/ff-assignment/internal/api/shared/executor"
	"github.com/feral-file/ff-assignment/internal/logger"
	"github.com/feral-file/ff-assignment/internal/messaging"
	"github.com/feral-file/ff-assignment/internal/store"
)

// Config holds the server configuration
type Config struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	publisher  messaging.Publisher
	clock      adapter.Clock
	router     *gin.Engine
	httpServer *http.Server
}

// New creates a new API server with its router and HTTP server ready to start
func New(cfg Config, store store.Store, publisher messaging.Publisher, clock adapter.Clock) *Server {
	s := &Server{
		config:    cfg,
		store:     store,
		publisher: publisher,
		clock:     clock,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:         s.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// Addr returns the host:port the server listens on
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Router returns the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) buildRouter() *gin.Engine {
	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create shared executor
	exec := executor.NewExecutor(s.store, s.publisher, s.clock, s.config.RequestTimeout)

	// Setup REST routes
	rest.SetupRoutes(router, rest.NewHandler(exec))

	return router
}

// Start serves HTTP until Shutdown is called
func (s *Server) Start() error {
	logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
