// Package metrics provides Prometheus metrics collection for the courier portal.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// WeightCalculationsTotal tracks chargeable weight calculations by which weight governed.
	WeightCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weight_calculations_total",
			Help: "Total number of chargeable weight calculations",
		},
		[]string{"basis"},
	)

	// HSNSearchesTotal tracks HSN searches by result class.
	HSNSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hsn_searches_total",
			Help: "Total number of HSN code searches",
		},
		[]string{"result"},
	)

	// HSNSearchDuration tracks HSN search duration.
	HSNSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hsn_search_duration_seconds",
			Help:    "HSN search duration in seconds",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		},
	)

	// HSNIndexBuildDuration tracks how long the one-time index build took.
	HSNIndexBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hsn_index_build_duration_seconds",
			Help:    "HSN index build duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"status"},
	)

	// HSNIndexEntries tracks the number of entries in the built index.
	HSNIndexEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hsn_index_entries",
			Help: "Number of entries in the HSN search index",
		},
	)

	// BackendRequestsTotal tracks calls to the remote logistics API.
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Total number of requests to the backend service",
		},
		[]string{"endpoint", "outcome"},
	)

	// BackendRequestDuration tracks backend call latency.
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Backend service request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// CircuitBreakerState tracks breaker state (0 closed, 1 half-open, 2 open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open",
		},
		[]string{"name"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
		[]string{"cache"},
	)

	// AuthFlowTransitionsTotal tracks login flow transitions by target stage.
	AuthFlowTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_flow_transitions_total",
			Help: "Total number of login flow transitions",
		},
		[]string{"event", "stage"},
	)

	// ActivityLogEntriesTotal tracks activity log entries through the async writer.
	ActivityLogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_log_entries_total",
			Help: "Activity log entries by result: enqueued, dropped, written, failed",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordWeightCalculation records which weight governed a calculation ("actual" or "volumetric").
func RecordWeightCalculation(basis string) {
	WeightCalculationsTotal.WithLabelValues(basis).Inc()
}

// RecordHSNSearch records a search and its result class.
func RecordHSNSearch(duration time.Duration, results int, skipped bool) {
	result := "hit"
	switch {
	case skipped:
		result = "short_query"
	case results == 0:
		result = "empty"
	}
	HSNSearchDuration.Observe(duration.Seconds())
	HSNSearchesTotal.WithLabelValues(result).Inc()
}

// RecordHSNIndexBuild records the outcome of the index build.
func RecordHSNIndexBuild(duration time.Duration, entries int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	HSNIndexBuildDuration.WithLabelValues(status).Observe(duration.Seconds())
	if err == nil {
		HSNIndexEntries.Set(float64(entries))
	}
}

// RecordBackendRequest records a call to the backend service.
func RecordBackendRequest(endpoint, outcome string, duration time.Duration) {
	BackendRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	BackendRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// SetCircuitBreakerState publishes a breaker's state.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(cache string, size, capacity int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
	CacheCapacity.WithLabelValues(cache).Set(float64(capacity))
}

// RecordAuthFlowTransition records a login flow transition.
func RecordAuthFlowTransition(event, stage string) {
	AuthFlowTransitionsTotal.WithLabelValues(event, stage).Inc()
}

// RecordActivityLogEntry records an activity log entry outcome.
func RecordActivityLogEntry(result string) {
	ActivityLogEntriesTotal.WithLabelValues(result).Inc()
}
