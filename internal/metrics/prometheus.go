// Package metrics provides Prometheus metrics for the portfolio service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every collector the service exports.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	chatQueries         *prometheus.CounterVec
	chatQueryRunes      prometheus.Histogram
	contactSubmissions  *prometheus.CounterVec
	visitorsTracked     prometheus.Counter
	retentionDeleted    *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets custom buckets for the HTTP latency histogram.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// NewManager creates a Manager on its own registry, so several can coexist
// in one process.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "portfolio",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.chatQueries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "chat",
		Name:      "queries_total",
		Help:      "Chat queries answered, by matched topic",
	}, []string{"topic"})

	m.chatQueryRunes = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "chat",
		Name:      "query_runes",
		Help:      "Length of normalized chat queries in runes",
		Buckets:   []float64{2, 10, 30, 60, 120, 250, 500},
	})

	m.contactSubmissions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "contact",
		Name:      "submissions_total",
		Help:      "Contact form submissions, by outcome",
	}, []string{"outcome"})

	m.visitorsTracked = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "visitors",
		Name:      "tracked_total",
		Help:      "Page views recorded with a hashed IP",
	})

	m.retentionDeleted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "retention",
		Name:      "deleted_rows_total",
		Help:      "Rows removed by the retention sweep, by table",
	}, []string{"table"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests, by route, method and status",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordChat counts one answered query.
func (m *Manager) RecordChat(topic string, runes int) {
	m.chatQueries.WithLabelValues(topic).Inc()
	m.chatQueryRunes.Observe(float64(runes))
}

// RecordContact counts one contact submission. The web layer reports
// "invalid", "delivered", "stored" (kept but not mailed) and "failed".
func (m *Manager) RecordContact(outcome string) {
	m.contactSubmissions.WithLabelValues(outcome).Inc()
}

// RecordVisitor counts one tracked page view.
func (m *Manager) RecordVisitor() {
	m.visitorsTracked.Inc()
}

// RecordRetention counts rows deleted from table by the retention sweep.
func (m *Manager) RecordRetention(table string, rows int64) {
	if rows > 0 {
		m.retentionDeleted.WithLabelValues(table).Add(float64(rows))
	}
}

// RecordHTTPRequest counts one request and observes its latency.
func (m *Manager) RecordHTTPRequest(route, method, status string, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
