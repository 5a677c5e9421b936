package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yourorg/wallet-token-ea/internal/circuitbreaker"
)

// serverMetrics holds Prometheus metrics for the server
type serverMetrics struct {
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	backendErrors   *prometheus.CounterVec
	tokensReturned  *prometheus.HistogramVec
	circuitBreaker  *prometheus.GaugeVec
}

// registerMetrics creates the server metrics and registers them on reg
func registerMetrics(reg prometheus.Registerer) *serverMetrics {
	m := &serverMetrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_tokens_requests_total",
				Help: "Total number of token queries processed",
			},
			[]string{"endpoint", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wallet_tokens_request_duration_seconds",
				Help:    "Token query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		backendErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_tokens_backend_errors_total",
				Help: "Total number of failed token queries by cause",
			},
			[]string{"cause"},
		),
		tokensReturned: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wallet_tokens_list_size",
				Help:    "Number of tokens in returned lists",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500},
			},
			[]string{"endpoint"},
		),
		circuitBreaker: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wallet_tokens_circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"backend"},
		),
	}

	reg.MustRegister(
		m.requestCounter,
		m.requestDuration,
		m.backendErrors,
		m.tokensReturned,
		m.circuitBreaker,
	)

	return m
}

// observeBreakers copies the breaker states into the gauge
func (m *serverMetrics) observeBreakers(breakers []*circuitbreaker.CircuitBreaker) {
	for _, b := range breakers {
		m.circuitBreaker.WithLabelValues(b.Name()).Set(float64(b.GetState()))
	}
}
