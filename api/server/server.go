package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fileops-orchestrator/api"
	"fileops-orchestrator/api/middleware"
	"fileops-orchestrator/config"
	"fileops-orchestrator/logger"
	"fileops-orchestrator/tasks/orchestrator"
	handlerRegistry "fileops-orchestrator/tasks/registry"
)

// Server wraps http.Server with graceful shutdown capabilities
type Server struct {
	httpServer *http.Server
	config     *config.Config
	logger     *logger.Logger
}

// dependencies contains all the dependencies needed to create a server
type dependencies struct {
	orchestrator orchestrator.Orchestrator
	registry     *handlerRegistry.HandlerRegistry
	config       *config.Config
	logger       *logger.Logger
}

// New creates a new server with all HTTP configuration
func New(orch orchestrator.Orchestrator, registry *handlerRegistry.HandlerRegistry, cfg *config.Config, lg *logger.Logger) *Server {
	deps := &dependencies{
		orchestrator: orch,
		registry:     registry,
		config:       cfg,
		logger:       lg,
	}

	handler := newRouter(deps)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Address(),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		config: cfg,
		logger: lg,
	}
}

// newRouter creates and configures the HTTP router with all routes and middleware
func newRouter(deps *dependencies) http.Handler {
	mux := http.NewServeMux()

	// Register API routes
	mux.HandleFunc("/submit", api.NewSubmitHandler(deps.orchestrator, deps.logger))
	mux.HandleFunc("/health", api.NewHealthHandler(deps.config, deps.registry, deps.logger))
	mux.HandleFunc("/tasks/", api.NewTaskStatusHandler(deps.orchestrator, deps.logger))

	return applyMiddleware(mux, deps.logger)
}

// applyMiddleware wraps the handler with all necessary middleware
func applyMiddleware(handler http.Handler, lg *logger.Logger) http.Handler {
	// Apply middleware in reverse order (last applied = first executed)
	wrapped := middleware.LoggingMiddleware(lg)(handler)
	return wrapped
}

// Start starts the server and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", map[string]any{
			"address": s.config.Address(),
		})
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("server failed to start", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	return s.shutdown()
}

// shutdown gracefully shuts down the server
func (s *Server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("server shutdown complete")
	return nil
}
