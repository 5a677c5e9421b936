// Package server exposes the token queries over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourorg/wallet-token-ea/internal/async"
	"github.com/yourorg/wallet-token-ea/internal/circuitbreaker"
	"github.com/yourorg/wallet-token-ea/internal/config"
)

// Version is reported by /health and /status
const Version = "1.0.0"

// Server represents the token API server instance
type Server struct {
	config config.Config

	// Query client shared by all handlers
	client *async.Client

	// Backend breakers, reported by /status
	breakers []*circuitbreaker.CircuitBreaker

	metrics  *serverMetrics
	registry *prometheus.Registry

	rateLimit *rate.Limiter
	server    *http.Server
	startTime time.Time
}

// New creates a server. Metrics are registered on registry; a nil registry
// gets a fresh one so several servers can coexist in one process.
func New(cfg config.Config, client *async.Client, registry *prometheus.Registry, breakers ...*circuitbreaker.CircuitBreaker) *Server {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	s := &Server{
		config:    cfg,
		client:    client,
		breakers:  breakers,
		registry:  registry,
		startTime: time.Now(),
	}

	if cfg.EnableMetrics {
		s.metrics = registerMetrics(registry)
	}
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = 1
		}
		s.rateLimit = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}

	logrus.WithFields(logrus.Fields{
		"port":       cfg.Port,
		"timeout":    cfg.RequestTimeout,
		"metrics":    cfg.EnableMetrics,
		"rate_limit": cfg.RateLimitRPS,
		"ready":      client.Service().Ready(),
	}).Info("Server initialized")

	return s
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/v1/tokens/user", s.query("user", s.handleUserTokens))
	mux.Handle("/v1/tokens/all", s.query("all", s.handleAllTokens))
	mux.Handle("/v1/tokens", s.query("tokens", s.handleTokens))
	mux.Handle("/v1/tokens/buy", s.query("buy", s.handleBuyTokens))
	mux.Handle("/v1/tokens/custom", s.query("custom", s.handleCustomToken))
	mux.Handle("/v1/tokens/exact", s.query("exact", s.handleExactAsset))

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/metrics", s.handleMetrics)

	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: s.config.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Server starting on port %s", s.config.Port)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logrus.Info("Server stopped")
	return nil
}

// handleHealth is a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"version":   Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleStatus reports backend readiness and breaker states
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	breakers := make(map[string]string, len(s.breakers))
	for _, b := range s.breakers {
		breakers[b.Name()] = b.GetState().String()
	}
	if s.metrics != nil {
		s.metrics.observeBreakers(s.breakers)
	}

	status := "operational"
	if !s.client.Service().Ready() {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   status,
		"uptime":   time.Since(s.startTime).String(),
		"version":  Version,
		"ready":    s.client.Service().Ready(),
		"breakers": breakers,
		"configuration": map[string]interface{}{
			"request_timeout":  s.config.RequestTimeout.String(),
			"reference_symbol": s.config.ReferenceSymbol,
			"registry_url":     s.config.RegistryURL,
			"wallet_url":       s.config.WalletURL,
		},
	})
}

// handleMetrics exposes Prometheus metrics
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if s.metrics == nil {
		http.Error(w, "Metrics disabled", http.StatusServiceUnavailable)
		return
	}
	s.metrics.observeBreakers(s.breakers)
	promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
}

// errorBody is the JSON shape of every error response
type errorBody struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("Failed to write response")
	}
}
