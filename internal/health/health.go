// Package health serves the liveness endpoint.
package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Body is the fixed liveness reply.
const Body = "✅ NodeSeek 签到 Worker 正常运行中"

const shutdownTimeout = 5 * time.Second

// Handler answers every request, whatever the method or path, with 200 and Body.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, Body)
	})
}

// Server runs the liveness endpoint until its context is canceled.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// NewServer creates a liveness server listening on addr.
func NewServer(addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger.With("component", "health_server"),
	}
}

// Run listens and serves, then shuts down gracefully when ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Liveness endpoint listening", "addr", ln.Addr().String())
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("liveness server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Error shutting down liveness endpoint", "error", err)
		return fmt.Errorf("failed to shut down liveness server: %w", err)
	}
	s.logger.Info("Liveness endpoint stopped")
	return nil
}
