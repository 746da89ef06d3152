// Package metrics registers the prometheus collectors for the dashboard:
// counters and latency for calls to the order-management backend, and a
// gauge for the open-order count maintained by the sync job.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GatewayMetrics observes outbound calls to the order-management backend.
type GatewayMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

// NewGatewayMetrics creates and registers the backend-call collectors.
// Call once per process.
func NewGatewayMetrics(registerer prometheus.Registerer) *GatewayMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderdesk",
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Total number of requests to the order-management backend.",
	}, []string{"operation", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "orderdesk",
		Subsystem: "gateway",
		Name:      "request_duration_ms",
		Help:      "Backend request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"operation"})

	registerer.MustRegister(requests, latency)
	return &GatewayMetrics{Requests: requests, LatencyMS: latency}
}

// Observe records one backend call.
func (m *GatewayMetrics) Observe(operation, outcome string, durationMS float64) {
	m.Requests.WithLabelValues(operation, outcome).Inc()
	m.LatencyMS.WithLabelValues(operation).Observe(durationMS)
}

// OpenOrdersGauge tracks the number of orders currently in the Open status,
// refreshed by the sync job.
func OpenOrdersGauge(registerer prometheus.Registerer) prometheus.Gauge {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "orderdesk",
		Subsystem: "orders",
		Name:      "open_total",
		Help:      "Number of orders currently in the Open status.",
	})
	registerer.MustRegister(gauge)
	return gauge
}

// Handler returns the HTTP handler serving the prometheus exposition.
func Handler() http.Handler {
	return promhttp.Handler()
}
