// Package metrics provides Prometheus metrics for the posts service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager owns the service's metric registry and collectors.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager builds a Manager with its own registry so tests never collide
// with the default global one.
func NewManager() *Manager {
	registry := prometheus.NewRegistry()

	m := &Manager{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "postapi",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by endpoint, method and status code.",
			},
			[]string{"endpoint", "method", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "postapi",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by endpoint, method and status code.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint", "method", "status"},
		),
	}

	registry.MustRegister(m.httpRequests, m.httpRequestDuration)

	return m
}

// Registry exposes the registry for the /metrics handler.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records one served request.
func (m *Manager) RecordHTTPRequest(endpoint, method, status string, durationSeconds float64) {
	m.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationSeconds)
}
