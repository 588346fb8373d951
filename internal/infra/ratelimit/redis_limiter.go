// Package ratelimit provides fixed-window request limiters.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/service"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "bazaar:ratelimit:"
	redisTimeout   = 250 * time.Millisecond
	defaultWindow  = time.Minute
)

type redisLimiter struct {
	client  *redis.Client
	logger  *slog.Logger
	timeout time.Duration
}

// NewRedisLimiter shares counters between replicas through Redis.
// Redis failures fail open so an outage never blocks traffic.
func NewRedisLimiter(client *redis.Client, logger *slog.Logger) service.RateLimiter {
	return &redisLimiter{
		client:  client,
		logger:  logger,
		timeout: redisTimeout,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) service.RateDecision {
	if limit <= 0 {
		return service.RateDecision{Allowed: true}
	}
	if window <= 0 {
		window = defaultWindow
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	redisKey := redisKeyPrefix + key

	var incr *redis.IntCmd
	var ttlCmd *redis.DurationCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		ttlCmd = pipe.TTL(ctx, redisKey)

		return nil
	})
	if err != nil {
		l.logRedisError("incr", err)

		return service.RateDecision{Allowed: true, Remaining: limit}
	}

	counter := incr.Val()
	ttl := ttlCmd.Val()
	// A counter without expiry, new or left behind by a failed EXPIRE, must get one or it never resets.
	if ttl < 0 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			l.logRedisError("expire", err)
		}
		ttl = window
	}

	return decision(int(counter), limit, time.Now().Add(ttl))
}

func (l *redisLimiter) logRedisError(op string, err error) {
	l.logger.Error("Redis rate limiter error", slog.String("op", op), slog.Any("error", err))
}

func decision(count, limit int, resetAt time.Time) service.RateDecision {
	return service.RateDecision{
		Allowed:   count <= limit,
		Count:     count,
		Remaining: max(limit-count, 0),
		ResetAt:   resetAt,
	}
}
