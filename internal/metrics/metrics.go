// Package metrics provides Prometheus metrics collection for the diet service.
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

	// OrderDecisionsTotal tracks dietician decisions on diet orders.
	OrderDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diet_order_decisions_total",
			Help: "Total number of diet order approval decisions",
		},
		[]string{"decision"},
	)

	// RequestDecisionsTotal tracks decisions on clinician diet requests.
	RequestDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "diet_request_decisions_total",
			Help: "Total number of diet request decisions",
		},
		[]string{"decision"},
	)

	// CanteenTransitionsTotal tracks kitchen workflow transitions.
	CanteenTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_transitions_total",
			Help: "Total number of canteen order status transitions",
		},
		[]string{"status"},
	)

	// TotalsRecomputationsTotal tracks package totals recomputations.
	TotalsRecomputationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "diet_package_recomputations_total",
			Help: "Total number of diet package totals recomputations",
		},
	)

	// TotalsRecomputationDuration tracks how long a totals recomputation takes.
	TotalsRecomputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "diet_package_recomputation_duration_seconds",
			Help:    "Diet package totals recomputation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
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

// RecordOrderDecision records a dietician decision on a diet order.
func RecordOrderDecision(decision string) {
	OrderDecisionsTotal.WithLabelValues(decision).Inc()
}

// RecordRequestDecision records a decision on a clinician diet request.
func RecordRequestDecision(decision string) {
	RequestDecisionsTotal.WithLabelValues(decision).Inc()
}

// RecordCanteenTransition records a kitchen workflow transition.
func RecordCanteenTransition(status string) {
	CanteenTransitionsTotal.WithLabelValues(status).Inc()
}

// RecordTotalsRecomputation records one package totals recomputation.
func RecordTotalsRecomputation(duration time.Duration) {
	TotalsRecomputationsTotal.Inc()
	TotalsRecomputationDuration.Observe(duration.Seconds())
}
