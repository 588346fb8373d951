package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"bazaar/config"
	"bazaar/internal/delivery/api/response"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/service"
	"bazaar/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultRateLimitRequests = 120
	defaultRateLimitWindow   = time.Minute
)

// RateLimitMiddleware applies a fixed-window limit per client.
type RateLimitMiddleware struct {
	limiter  service.RateLimiter
	metrics  *MetricsMiddleware
	enabled  bool
	requests int
	window   time.Duration
	logger   *slog.Logger
}

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter
	Metrics *MetricsMiddleware
	Config  *config.Config
	Logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		limiter:  params.Limiter,
		metrics:  params.Metrics,
		requests: defaultRateLimitRequests,
		window:   defaultRateLimitWindow,
		logger:   params.Logger,
	}

	if cfg := params.Config.RateLimit; cfg != nil {
		m.enabled = cfg.Enabled
		if cfg.Requests > 0 {
			m.requests = cfg.Requests
		}
		if cfg.Window > 0 {
			m.window = cfg.Window
		}
	}

	return m
}

// Handle rejects clients over their budget with 429 and reports the budget in headers.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled || m.limiter == nil {
			return next(c)
		}

		decision := m.limiter.Allow(c.Request().Context(), "ip:"+c.RealIP(), m.requests, m.window)

		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(m.requests))
		header.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.ResetAt.IsZero() {
			header.Set("X-RateLimit-Reset", strconv.FormatInt(decision.ResetAt.Unix(), 10))
		}

		if !decision.Allowed {
			retryAfter := max(time.Until(decision.ResetAt).Round(time.Second), time.Second)
			header.Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			if m.metrics != nil {
				m.metrics.RecordRateLimitHit(c.Path())
			}
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rate limit exceeded",
				slog.String("remote_ip", c.RealIP()),
				slog.Int("count", decision.Count),
			)

			return response.TooManyRequests(c, "Too many requests, retry in "+util.FormatDuration(retryAfter))
		}

		return next(c)
	}
}
