package middleware

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var histogramBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

// MetricsMiddleware records request counts and latency per route.
type MetricsMiddleware struct {
	registry       *prometheus.Registry
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	rateLimitHits  *prometheus.CounterVec
}

// NewMetricsMiddleware registers the HTTP collectors on a dedicated registry.
func NewMetricsMiddleware(registry *prometheus.Registry) (*MetricsMiddleware, error) {
	m := &MetricsMiddleware{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bazaar",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bazaar",
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
		rateLimitHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bazaar",
			Subsystem: "api",
			Name:      "rate_limit_hits_total",
			Help:      "Number of rate-limited responses",
		}, []string{"route"}),
	}

	for _, collector := range []prometheus.Collector{m.requestTotal, m.requestLatency, m.rateLimitHits} {
		if err := registry.Register(collector); err != nil {
			return nil, errors.Wrap(err, "failed to register HTTP metrics")
		}
	}

	return m, nil
}

// Handle observes every request that reaches a route.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request().Method,
			"route":  route,
			"status": strconv.Itoa(statusOf(c, err)),
		}
		m.requestTotal.With(labels).Inc()
		m.requestLatency.With(labels).Observe(time.Since(start).Seconds())

		return err
	}
}

// RecordRateLimitHit counts a rejected request.
func (m *MetricsMiddleware) RecordRateLimitHit(route string) {
	m.rateLimitHits.With(prometheus.Labels{"route": route}).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *MetricsMiddleware) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// statusOf predicts the status the error handler will write for err.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		if c.Response().Status == 0 {
			return http.StatusOK
		}

		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	if errors.Is(err, domainerrors.ErrValidationFailed) {
		return domainerrors.ErrValidationFailed.HTTPCode()
	}

	return http.StatusInternalServerError
}
