package service

import (
	"context"
	"time"
)

// RateDecision is the outcome of a rate limit check.
type RateDecision struct {
	Allowed   bool
	Count     int
	Remaining int
	ResetAt   time.Time
}

// RateLimiter counts requests per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) RateDecision
}
