// Package server exposes shortest-path queries over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/metrics"
)

// limiterIdle is how long a client's limiter survives without traffic.
const limiterIdle = 10 * time.Minute

// Server answers routing queries against one immutable graph.
type Server struct {
	graph   *core.Graph[string]
	opts    []dijkstra.Option
	cfg     config.ServerConfig
	logger  *zap.Logger
	metrics *metrics.Recorder

	// rate limiter state
	limiters sync.Map // map[string]*clientLimiter
}

// New creates a Server. g must not be mutated while the server runs.
// opts are applied to every query; a nil logger discards logs.
func New(g *core.Graph[string], cfg config.ServerConfig, opts []dijkstra.Option, logger *zap.Logger, rec *metrics.Recorder) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	// Weights were validated when g was built.
	opts = append(append([]dijkstra.Option(nil), opts...), dijkstra.WithTrustedWeights())

	return &Server{
		graph:   g,
		opts:    opts[:len(opts):len(opts)],
		cfg:     cfg,
		logger:  logger,
		metrics: rec,
	}
}

// Handler returns the routes wrapped in the middleware chain:
// request id → access log → rate limit → mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, s)

	var handler http.Handler = mux
	handler = s.rateLimiter(handler)
	handler = s.accessLog(handler)
	handler = requestID(handler)

	return handler
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Listen, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: s.cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go s.sweepLimiters(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening",
			zap.String("addr", ln.Addr().String()),
			zap.Int("nodes", s.graph.NodeCount()),
			zap.Int("edges", s.graph.EdgeCount()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
