package httpapi

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/lite-lake/subdomaind/internal/application/handler"
	"github.com/lite-lake/subdomaind/internal/domain/entity"
	"github.com/lite-lake/subdomaind/internal/infrastructure/logger"
	"github.com/lite-lake/subdomaind/internal/infrastructure/metrics"
)

const shutdownTimeout = 5 * time.Second

// HealthCheck reports whether the process can serve requests.
type HealthCheck func(ctx context.Context) error

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Server exposes the provisioning handler together with health and
// metrics endpoints.
type Server struct {
	cfg     entity.ServerConfig
	handler http.Handler
	metrics *metrics.Registry
	health  HealthCheck

	mu     sync.Mutex
	server *http.Server
	addr   net.Addr
}

func NewServer(cfg entity.ServerConfig, h http.Handler, m *metrics.Registry, health HealthCheck) *Server {
	return &Server{cfg: cfg, handler: h, metrics: m, health: health}
}

// Handler builds the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// No method in the pattern: method gating belongs to the handler.
	mux.Handle(s.cfg.Path, s.handler)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	return requestID(recoverer(mux))
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start() error {
	tc, err := tlsConfig(s.cfg.TLS)
	if err != nil {
		return fmt.Errorf("configuring tls: %w", err)
	}

	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Listen, err)
	}
	if tc != nil {
		ln = tls.NewListener(ln, tc)
	}

	timeout := s.cfg.ReadHeaderTimeout
	if timeout <= 0 {
		timeout = entity.DefaultReadHeaderTimeout
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: timeout,
	}

	s.mu.Lock()
	s.server = srv
	s.addr = ln.Addr()
	s.mu.Unlock()

	logger.Info("http server listening", "addr", ln.Addr().String(), "path", s.cfg.Path, "tls", tc != nil)

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
		}
	}()

	return nil
}

// Addr returns the bound address once Start has succeeded.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health(r.Context()); err != nil {
			logger.FromContext(r.Context()).Warn("health check failed", "error", err)
			handler.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: err.Error()})
			return
		}
	}
	handler.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
