package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Service metrics
	ServiceCalls    *prometheus.CounterVec
	ServiceDuration *prometheus.HistogramVec
	ServiceErrors   *prometheus.CounterVec

	// Store metrics
	StoreNodes       prometheus.Gauge
	StoreFiles       prometheus.Gauge
	StoreDirectories prometheus.Gauge
	StoreBytes       prometheus.Gauge

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSEvents      *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		// HTTP metrics
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mirofs_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mirofs_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mirofs_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mirofs_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),

		// Service metrics
		ServiceCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mirofs_service_calls_total",
				Help: "Total number of service calls",
			},
			[]string{"service", "method", "status"},
		),
		ServiceDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mirofs_service_duration_seconds",
				Help:    "Service call duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"service", "method"},
		),
		ServiceErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mirofs_service_errors_total",
				Help: "Total number of service errors",
			},
			[]string{"service", "method", "error_type"},
		),

		// Store metrics
		StoreNodes: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mirofs_store_nodes",
				Help: "Number of nodes in the tree store",
			},
		),
		StoreFiles: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mirofs_store_files",
				Help: "Number of files in the tree store",
			},
		),
		StoreDirectories: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mirofs_store_directories",
				Help: "Number of directories in the tree store",
			},
		),
		StoreBytes: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mirofs_store_bytes",
				Help: "Total file content bytes in the tree store",
			},
		),

		// WebSocket metrics
		WSConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mirofs_ws_connections",
				Help: "Number of active WebSocket connections",
			},
		),
		WSEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mirofs_ws_events_total",
				Help: "Total number of change events streamed over WebSocket",
			},
			[]string{"type"},
		),

		// System metrics
		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "mirofs_uptime_seconds",
				Help: "Server uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
}

// RecordServiceCall records a service call
func (m *Metrics) RecordServiceCall(service, method, status string, duration time.Duration) {
	m.ServiceCalls.WithLabelValues(service, method, status).Inc()
	m.ServiceDuration.WithLabelValues(service, method).Observe(duration.Seconds())
}

// RecordServiceError records a service error
func (m *Metrics) RecordServiceError(service, method, errorType string) {
	m.ServiceErrors.WithLabelValues(service, method, errorType).Inc()
}

// RecordWSEvent records a streamed change event
func (m *Metrics) RecordWSEvent(eventType string) {
	m.WSEvents.WithLabelValues(eventType).Inc()
}

// SetStoreStats updates the tree store gauges
func (m *Metrics) SetStoreStats(nodes, files, directories int, bytes int64) {
	m.StoreNodes.Set(float64(nodes))
	m.StoreFiles.Set(float64(files))
	m.StoreDirectories.Set(float64(directories))
	m.StoreBytes.Set(float64(bytes))
}

// IncWSConnections increments WebSocket connections
func (m *Metrics) IncWSConnections() {
	m.WSConnections.Inc()
}

// DecWSConnections decrements WebSocket connections
func (m *Metrics) DecWSConnections() {
	m.WSConnections.Dec()
}
