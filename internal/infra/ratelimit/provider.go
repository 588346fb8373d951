package ratelimit

import (
	"log/slog"

	"bazaar/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// LimiterParams holds dependencies for the RateLimiter, injected by Fx
type LimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// NewRateLimiter uses Redis when available so limits hold across replicas.
func NewRateLimiter(params LimiterParams) service.RateLimiter {
	if params.Redis != nil {
		return NewRedisLimiter(params.Redis, params.Logger)
	}

	params.Logger.Info("Using in-memory rate limiter")

	limiter := NewMemoryLimiter()
	params.Lc.Append(fx.StopHook(limiter.Close))

	return limiter
}
