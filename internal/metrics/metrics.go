// Package metrics exposes Prometheus instrumentation for the HTTP layer and
// the marker endpoints.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitmap_api_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "visitmap_api_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// MarkersServed counts markers returned, labelled by source
	// ("today", "nearby", "search").
	MarkersServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitmap_markers_served_total",
			Help: "Total number of markers returned to clients",
		},
		[]string{"source"},
	)

	MarkersStyled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visitmap_markers_styled_total",
			Help: "Markers by whether a color rule matched",
		},
		[]string{"matched"},
	)
)

// RecordAPIRequest records one finished request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordMarkers(source string, n int) {
	MarkersServed.WithLabelValues(source).Add(float64(n))
}

func RecordStyled(matched bool) {
	MarkersStyled.WithLabelValues(strconv.FormatBool(matched)).Inc()
}

// Middleware records request count and latency per route template. Unmatched
// routes are grouped under "unmatched" to keep label cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RecordAPIRequest(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
