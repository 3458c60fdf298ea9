// Package metrics owns the Prometheus registry of the service and the gin
// middleware that feeds it.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "items"

// unmatchedRoute labels requests that hit no registered route, which keeps
// label cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics groups the collectors of the service on a private registry.
type Metrics struct {
	registry         *prometheus.Registry
	requests         *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	inFlight         prometheus.Gauge
	errors           *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
	itemsCreated     *prometheus.CounterVec
}

// New builds a Metrics with Go runtime and process collectors registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_errors_total",
			Help:      "HTTP error responses by route and error type.",
		}, []string{"route", "type"}),
		validationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_errors_total",
			Help:      "Rejected inputs by route and error type.",
		}, []string{"route", "type"}),
		itemsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_created_total",
			Help:      "Items accepted by POST /items/, split by whether a tax applied.",
		}, []string{"taxed"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.inFlight,
		m.errors,
		m.validationErrors,
		m.itemsCreated,
	)
	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry}))
}

// Middleware records request count, latency and error class for every request.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := c.Writer.Status()

		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
		if status >= 400 {
			m.errors.WithLabelValues(route, errorType(status)).Inc()
		}
	}
}

// ValidationFailed counts one rejected input of the given error type.
func (m *Metrics) ValidationFailed(route, errType string) {
	m.validationErrors.WithLabelValues(route, errType).Inc()
}

// ItemCreated counts an accepted item.
func (m *Metrics) ItemCreated(taxed bool) {
	m.itemsCreated.WithLabelValues(strconv.FormatBool(taxed)).Inc()
}

// errorType returns a standardized error class for an HTTP status code.
func errorType(status int) string {
	switch {
	case status >= 500:
		return "server_error"
	case status == 422:
		return "validation"
	case status == 404:
		return "not_found"
	case status == 405:
		return "method_not_allowed"
	case status == 413:
		return "too_large"
	default:
		return "client_error"
	}
}
