// Package metrics provides Prometheus metrics collection for the label service.
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

	// LabelBatchesTotal tracks batch generation outcomes.
	LabelBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "label_batches_total",
			Help: "Total number of label batch generations",
		},
		[]string{"status"},
	)

	// LabelBatchSize tracks how many labels each batch produced.
	LabelBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "label_batch_size",
			Help:    "Number of labels per generated batch",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		},
	)

	// SerialAllocationsTotal tracks serial range reservations per bucket outcome.
	SerialAllocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "serial_allocations_total",
			Help: "Total number of serial range reservations",
		},
		[]string{"status"},
	)

	// StatusTransitionsTotal tracks lifecycle transitions by edge.
	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "label_status_transitions_total",
			Help: "Total number of label lifecycle transitions",
		},
		[]string{"from", "to"},
	)

	// CacheOperationsTotal tracks label cache operations by type and result.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "label_cache_operations_total",
			Help: "Total number of label cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordBatchGeneration records a batch generation outcome.
func RecordBatchGeneration(count int, status string) {
	LabelBatchesTotal.WithLabelValues(status).Inc()
	if status == "success" {
		LabelBatchSize.Observe(float64(count))
	}
}

// RecordAllocation records a serial range reservation. The prefix is not a
// metric label on purpose: buckets are unbounded in cardinality.
func RecordAllocation(_ string, status string) {
	SerialAllocationsTotal.WithLabelValues(status).Inc()
}

// RecordStatusTransition records one lifecycle transition.
func RecordStatusTransition(from, to string) {
	StatusTransitionsTotal.WithLabelValues(from, to).Inc()
}

// RecordCacheOperation records a label cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
