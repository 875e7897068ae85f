package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector aggregates the Prometheus series the dashboard exposes.
type MetricsCollector struct {
	// HTTP surface
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Upstream REST backend
	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	// Response cache
	cacheHitsTotal   *prometheus.CounterVec
	cacheMissesTotal *prometheus.CounterVec

	// Moderation pipeline
	moderationActionsTotal *prometheus.CounterVec

	// Contract calls
	chainCallsTotal   *prometheus.CounterVec
	chainCallDuration *prometheus.HistogramVec
}

// NewMetricsCollector registers and returns the collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		upstreamRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of requests issued to the platform backend",
			},
			[]string{"resource", "status"},
		),

		upstreamRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Upstream request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),

		cacheHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"resource"},
		),

		cacheMissesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"resource"},
		),

		moderationActionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moderation_actions_total",
				Help: "Total number of dispatched moderation actions",
			},
			[]string{"entity", "action", "outcome"},
		),

		chainCallsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chain_calls_total",
				Help: "Total number of smart contract calls",
			},
			[]string{"method", "status"},
		),

		chainCallDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chain_call_duration_seconds",
				Help:    "Smart contract call duration including confirmation wait",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"method"},
		),
	}
}

// RecordHTTPRequest records one served HTTP request.
func (m *MetricsCollector) RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordUpstreamRequest records one request against the platform backend.
func (m *MetricsCollector) RecordUpstreamRequest(resource, status string, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(resource, status).Inc()
	m.upstreamRequestDuration.WithLabelValues(resource).Observe(duration.Seconds())
}

// RecordCacheLookup records a cache hit or miss for a resource.
func (m *MetricsCollector) RecordCacheLookup(resource string, hit bool) {
	if hit {
		m.cacheHitsTotal.WithLabelValues(resource).Inc()
	} else {
		m.cacheMissesTotal.WithLabelValues(resource).Inc()
	}
}

// RecordModerationAction records a dispatched moderation action outcome.
func (m *MetricsCollector) RecordModerationAction(entity, action, outcome string) {
	m.moderationActionsTotal.WithLabelValues(entity, action, outcome).Inc()
}

// RecordChainCall records a contract call and its confirmation latency.
func (m *MetricsCollector) RecordChainCall(method string, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	m.chainCallsTotal.WithLabelValues(method, status).Inc()
	m.chainCallDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// GlobalCollector is the process-wide collector instance.
var GlobalCollector *MetricsCollector

// InitMetrics initialises the global collector.
func InitMetrics() {
	GlobalCollector = NewMetricsCollector()
}

// GetGlobalCollector returns the global collector, initialising it lazily.
func GetGlobalCollector() *MetricsCollector {
	if GlobalCollector == nil {
		InitMetrics()
	}
	return GlobalCollector
}
