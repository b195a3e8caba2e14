package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/remitflow/wallet-backend/internal/domain"
)

const namespace = "remitflow"

// Metrics holds the application Prometheus collectors
// It implements transfer.Observer
type Metrics struct {
	Registry *prometheus.Registry

	corridorValidations *prometheus.CounterVec
	quotes              *prometheus.CounterVec
	transfers           *prometheus.CounterVec
	grpcRequests        *prometheus.CounterVec
	grpcDuration        *prometheus.HistogramVec
}

// New creates the collectors and registers them on a fresh registry
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		corridorValidations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "corridor_validations_total",
				Help:      "Corridor classifications by status.",
			},
			[]string{"status"},
		),
		quotes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quotes_total",
				Help:      "Prepared transfer quotes by outcome.",
			},
			[]string{"outcome"},
		),
		transfers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transfers_total",
				Help:      "Send-money submissions by outcome.",
			},
			[]string{"outcome"},
		),
		grpcRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "grpc",
				Name:      "requests_total",
				Help:      "Total number of gRPC requests handled.",
			},
			[]string{"method", "code"},
		),
		grpcDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "grpc",
				Name:      "request_duration_seconds",
				Help:      "Duration of gRPC requests.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"method"},
		),
	}

	m.Registry.MustRegister(
		m.corridorValidations,
		m.quotes,
		m.transfers,
		m.grpcRequests,
		m.grpcDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// ObserveCorridor counts a corridor classification
func (m *Metrics) ObserveCorridor(status domain.CorridorStatus) {
	m.corridorValidations.WithLabelValues(string(status)).Inc()
}

// ObserveQuote counts a prepared quote
func (m *Metrics) ObserveQuote(outcome string) {
	m.quotes.WithLabelValues(outcome).Inc()
}

// ObserveTransfer counts a send-money submission
func (m *Metrics) ObserveTransfer(outcome string) {
	m.transfers.WithLabelValues(outcome).Inc()
}

// ObserveGRPC records a finished gRPC call
func (m *Metrics) ObserveGRPC(method, code string, elapsed time.Duration) {
	m.grpcRequests.WithLabelValues(method, code).Inc()
	m.grpcDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
