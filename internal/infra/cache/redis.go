// Package cache provides Redis-backed and in-process caches.
package cache

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingTimeout = 2 * time.Second

// RedisParams holds dependencies for the Redis client, injected by Fx
type RedisParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to Redis when it is configured.
// It returns a nil client when no address is set so callers can fall back to memory.
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-memory fallbacks")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
	}

	params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing Redis client")

		return errors.WithStack(client.Close())
	}))

	return client, nil
}
