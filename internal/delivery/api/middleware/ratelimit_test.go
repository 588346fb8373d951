package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"
	mockService "bazaar/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestRateLimitMiddleware_Allowed(t *testing.T) {
	limiter := mockService.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, "ip:198.51.100.4", 10, time.Minute).
		Return(service.RateDecision{Allowed: true, Count: 1, Remaining: 9, ResetAt: time.Now().Add(time.Minute)})

	m := NewRateLimitMiddleware(RateLimitMiddlewareParams{
		Limiter: limiter,
		Config:  &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Requests: 10, Window: time.Minute}},
		Logger:  discardLogger(),
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set(echo.HeaderXRealIP, "198.51.100.4")
	rec := httptest.NewRecorder()

	require.NoError(t, m.Handle(okHandler)(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "9", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitMiddleware_Rejected(t *testing.T) {
	limiter := mockService.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, mock.Anything, 120, time.Minute).
		Return(service.RateDecision{Allowed: false, Count: 121, Remaining: 0, ResetAt: time.Now().Add(30 * time.Second)})

	metrics, err := NewMetricsMiddleware(prometheus.NewRegistry())
	require.NoError(t, err)

	m := NewRateLimitMiddleware(RateLimitMiddlewareParams{
		Limiter: limiter,
		Metrics: metrics,
		Config:  &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true}},
		Logger:  discardLogger(),
	})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil), rec)
	c.SetPath("/api/v1/orders")

	require.NoError(t, m.Handle(okHandler)(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.rateLimitHits.WithLabelValues("/api/v1/orders")), 0)
}

func TestRateLimitMiddleware_DisabledSkipsLimiter(t *testing.T) {
	limiter := mockService.NewMockRateLimiter(t)

	m := NewRateLimitMiddleware(RateLimitMiddlewareParams{
		Limiter: limiter,
		Config:  &config.Config{},
		Logger:  discardLogger(),
	})

	e := echo.New()
	rec := httptest.NewRecorder()

	require.NoError(t, m.Handle(okHandler)(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
