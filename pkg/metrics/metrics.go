// Package metrics provides Prometheus metrics for the hoopboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Default metric configuration constants.
const (
	defaultNamespace = "hoopboard"
)

// defaultLatencyBuckets cover sub-millisecond in-memory queries up to
// slow multi-second loads.
var defaultLatencyBuckets = []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000}

// Manager owns the metric vectors and the registry they live in.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	httpErrors     *prometheus.CounterVec
	queryDuration  *prometheus.HistogramVec
	queriesTotal   *prometheus.CounterVec
	datasetRecords prometheus.Gauge
	datasetSeasons prometheus.Gauge
	datasetTeams   prometheus.Gauge
	loadDuration   prometheus.Histogram
	rowsRejected   *prometheus.CounterVec
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithLatencyBuckets sets custom histogram buckets for latency metrics.
func WithLatencyBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// NewManager creates a Manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: defaultNamespace,
		buckets:   defaultLatencyBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})

	m.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   m.buckets,
	}, []string{"endpoint", "method"})

	m.httpErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_errors_total",
		Help:      "HTTP error responses by endpoint and class.",
	}, []string{"endpoint", "class"})

	m.queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "query_duration_ms",
		Help:      "Statistics query duration in milliseconds.",
		Buckets:   m.buckets,
	}, []string{"query"})

	m.queriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "queries_total",
		Help:      "Statistics queries executed, by query name.",
	}, []string{"query"})

	m.datasetRecords = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "dataset_records",
		Help:      "Number of game records in the loaded dataset.",
	})

	m.datasetSeasons = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "dataset_seasons",
		Help:      "Number of distinct seasons in the loaded dataset.",
	})

	m.datasetTeams = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "dataset_teams",
		Help:      "Number of distinct teams in the loaded dataset.",
	})

	m.loadDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "dataset_load_duration_ms",
		Help:      "Dataset load duration in milliseconds.",
		Buckets:   m.buckets,
	})

	m.rowsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "loader_rows_rejected_total",
		Help:      "Source rows dropped during load, by reason.",
	}, []string{"reason"})

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.httpErrors,
		m.queryDuration,
		m.queriesTotal,
		m.datasetRecords,
		m.datasetSeasons,
		m.datasetTeams,
		m.loadDuration,
		m.rowsRejected,
	)
}

// Registry returns the manager's registry for serving /metrics.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

var defaultManager = NewManager()

// GetRegistry returns the default manager's registry.
func GetRegistry() *prometheus.Registry {
	return defaultManager.Registry()
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	defaultManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method string, ms float64) {
	defaultManager.httpDuration.WithLabelValues(endpoint, method).Observe(ms)
}

// RecordHTTPError counts one HTTP error response.
func RecordHTTPError(endpoint, class string) {
	defaultManager.httpErrors.WithLabelValues(endpoint, class).Inc()
}

// RecordQueryDuration observes one statistics query.
func RecordQueryDuration(query string, ms float64) {
	defaultManager.queriesTotal.WithLabelValues(query).Inc()
	defaultManager.queryDuration.WithLabelValues(query).Observe(ms)
}

// UpdateDatasetSize sets the dataset gauges after a load.
func UpdateDatasetSize(records, seasons, teams int) {
	defaultManager.datasetRecords.Set(float64(records))
	defaultManager.datasetSeasons.Set(float64(seasons))
	defaultManager.datasetTeams.Set(float64(teams))
}

// RecordLoadDuration observes one dataset load.
func RecordLoadDuration(ms float64) {
	defaultManager.loadDuration.Observe(ms)
}

// RecordRowRejected counts one dropped source row.
func RecordRowRejected(reason string) {
	defaultManager.rowsRejected.WithLabelValues(reason).Inc()
}
