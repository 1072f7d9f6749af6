package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the Prometheus metrics of the widget hub
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	backendRequests *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec

	widgetBuilds *prometheus.CounterVec
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	return &Collector{
		httpRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formd_hub_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "formd_hub_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"method", "path"},
		),
		backendRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formd_hub_backend_requests_total",
				Help: "Total number of upstream backend calls by outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		backendDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "formd_hub_backend_request_duration_seconds",
				Help:    "Upstream backend call duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"endpoint"},
		),
		widgetBuilds: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "formd_hub_widget_builds_total",
				Help: "Total number of widget payloads built",
			},
			[]string{"widget", "status"},
		),
	}
}

// RecordHTTPRequest records one served HTTP request
func (c *Collector) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, status).Inc()
	c.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveBackendRequest records one upstream backend call and its outcome
// (success, error_status, malformed, unreachable)
func (c *Collector) ObserveBackendRequest(endpoint, outcome string, duration time.Duration) {
	c.backendRequests.WithLabelValues(endpoint, outcome).Inc()
	c.backendDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// IncWidgetBuilt records one widget payload build
func (c *Collector) IncWidgetBuilt(widget, status string) {
	c.widgetBuilds.WithLabelValues(widget, status).Inc()
}
