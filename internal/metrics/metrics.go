// Package metrics exposes Prometheus counters for the outreach service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Outreach counters, labelled by outcome (sent/failed).
	EmailsTotal *prometheus.CounterVec

	// API metrics.
	APIRequestsTotal          *prometheus.CounterVec
	APIRequestDurationSeconds *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates a Metrics instance with its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		EmailsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outreach_emails_total",
				Help: "Total outreach emails by outcome",
			},
			[]string{"status"},
		),
		APIRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outreach_api_requests_total",
				Help: "Total API requests",
			},
			[]string{"method", "path", "status"},
		),
		APIRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "outreach_api_request_duration_seconds",
				Help:    "API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		registry: reg,
	}

	reg.MustRegister(m.EmailsTotal, m.APIRequestsTotal, m.APIRequestDurationSeconds)
	return m
}

// RecordEmail counts one send attempt by its recorded status.
func (m *Metrics) RecordEmail(status string) {
	m.EmailsTotal.WithLabelValues(status).Inc()
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
