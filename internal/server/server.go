package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server is the HTTP surface over the recommendation and insights views.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	handler    *JobsHandler
	logger     *slog.Logger
}

// NewServer builds the router and binds it to addr. Nothing listens until Run.
func NewServer(addr string, readTimeout time.Duration, handler *JobsHandler, logger *slog.Logger) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("configuring proxies: %w", err)
	}
	router.Use(gin.Recovery(), requestLogger(logger))

	s := &Server{
		router:  router,
		handler: handler,
		logger:  logger,
		httpServer: &http.Server{
			Addr:        addr,
			Handler:     router,
			ReadTimeout: readTimeout,
		},
	}
	s.setUpRoutes()
	return s, nil
}

func (s *Server) setUpRoutes() {
	s.router.GET("/health", s.handler.Health)

	api := s.router.Group("/api")
	{
		api.GET("/jobs", s.handler.ListJobs)
		api.GET("/jobs/:index", s.handler.GetJob)
		api.GET("/recommend", s.handler.Recommend)
		api.GET("/insights", s.handler.Insights)
		api.GET("/export.csv", s.handler.Export)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down within shutdownTimeout.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}

// requestLogger logs each request through slog instead of gin's own writer.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
