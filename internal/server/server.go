// Package server serves the icon catalog over HTTP as SVG, PNG and sprite
// sheets, plus a browsable gallery.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/louisbranch/lucide/internal/platform/timeouts"
)

const (
	defaultRateLimit  = 600
	defaultRateWindow = time.Minute
)

// Config defines the inputs for the icon server.
type Config struct {
	HTTPAddr string
	// RateLimit is the number of requests one client IP may make per
	// RateWindow. Zero uses the default; negative disables limiting.
	RateLimit  int
	RateWindow time.Duration
	// Tracing wraps the router with otelhttp spans.
	Tracing bool
	// Registry receives the server metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
	Logger   zerolog.Logger
}

// Server hosts the icon HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     zerolog.Logger
}

// New builds a configured icon server.
func New(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(cfg),
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
		logger: cfg.Logger,
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe binds the configured address and serves until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("icon server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx ends, then shuts down
// gracefully within timeouts.Shutdown.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("icon server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Str("addr", listener.Addr().String()).Msg("icon server listening")
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		s.logger.Info().Msg("icon server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
