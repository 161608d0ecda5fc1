// Package metrics defines the Prometheus collectors for the catalog API and
// the Fiber middleware that feeds the HTTP ones. Collectors register with the
// default registry at init via promauto; expose them by mounting
// promhttp.Handler on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// HTTPRequestsTotal counts handled HTTP requests.
// Labels: method, path (route pattern, not raw URL), status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration measures request handling time.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// WritesTotal counts catalog write operations by entity and outcome.
var WritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "writes_total",
		Help:      "Total number of catalog write operations, by entity, operation and result.",
	},
	[]string{"entity", "operation", "result"},
)

// RecordWrite records the outcome of a create/update/delete call.
func RecordWrite(entity, operation string, success bool) {
	result := "ok"
	if !success {
		result = "failed"
	}
	WritesTotal.WithLabelValues(entity, operation, result).Inc()
}

// Middleware observes every request passing through the app.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		HTTPRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(c.Response().StatusCode())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}
