package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides Prometheus metrics for the request pipeline.
// It is safe for concurrent use.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
	faultsTotal      *prometheus.CounterVec
}

// NewMetrics creates a collector on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates a collector using the supplied registerer.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	return &Metrics{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "restkit_requests_total",
				Help: "Total number of HTTP requests made",
			},
			[]string{"method", "status_code"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "restkit_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "status_code"},
		),
		requestsInFlight: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "restkit_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
			[]string{"method"},
		),
		faultsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "restkit_transport_faults_total",
				Help: "Total number of transport-level faults",
			},
			[]string{"method"},
		),
	}
}

// begin records an in-flight request and returns the completion callback.
// A negative status code records a transport fault.
func (m *Metrics) begin(method string) func(statusCode int, elapsed time.Duration) {
	if m == nil {
		return func(int, time.Duration) {}
	}
	m.requestsInFlight.WithLabelValues(method).Inc()
	return func(statusCode int, elapsed time.Duration) {
		m.requestsInFlight.WithLabelValues(method).Dec()
		if statusCode < 0 {
			m.faultsTotal.WithLabelValues(method).Inc()
			return
		}
		status := strconv.Itoa(statusCode)
		m.requestsTotal.WithLabelValues(method, status).Inc()
		m.requestDuration.WithLabelValues(method, status).Observe(elapsed.Seconds())
	}
}
