package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/util"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const sessionKeyPrefix = "bazaar:session:"

// tokenKey derives the cache key from a token. Raw tokens are never stored.
func tokenKey(token string) string {
	return sessionKeyPrefix + util.SHA256Hex(token)
}

// SessionCacheParams holds dependencies for the session cache, injected by Fx
type SessionCacheParams struct {
	fx.In

	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// NewSessionCache picks the Redis cache when a client is available and memory otherwise.
func NewSessionCache(params SessionCacheParams) repository.SessionCache {
	if params.Redis != nil {
		return NewRedisSessionCache(params.Redis)
	}

	params.Logger.Warn("Session cache is process-local; cached profiles are not shared between replicas")

	return NewMemorySessionCache()
}

type redisSessionCache struct {
	client *redis.Client
}

// NewRedisSessionCache stores cached profiles as JSON values with a TTL.
func NewRedisSessionCache(client *redis.Client) repository.SessionCache {
	return &redisSessionCache{client: client}
}

func (c *redisSessionCache) Get(ctx context.Context, token string) (*entity.User, error) {
	raw, err := c.client.Get(ctx, tokenKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cached session")
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached session")
	}

	return &user, nil
}

func (c *redisSessionCache) Set(ctx context.Context, token string, user *entity.User, ttl time.Duration) error {
	if user == nil {
		return errors.New("cannot cache a nil user")
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	return errors.Wrap(c.client.Set(ctx, tokenKey(token), raw, ttl).Err(), "failed to cache session")
}

func (c *redisSessionCache) Delete(ctx context.Context, token string) error {
	return errors.Wrap(c.client.Del(ctx, tokenKey(token)).Err(), "failed to evict session")
}

type memoryEntry struct {
	user      entity.User
	expiresAt time.Time
}

type memorySessionCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemorySessionCache keeps cached profiles in process memory.
// Expired entries are dropped lazily on access and on each write.
func NewMemorySessionCache() repository.SessionCache {
	return &memorySessionCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *memorySessionCache) Get(_ context.Context, token string) (*entity.User, error) {
	key := tokenKey(token)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)

		return nil, repository.ErrSessionNotFound
	}

	user := entry.user

	return &user, nil
}

func (c *memorySessionCache) Set(_ context.Context, token string, user *entity.User, ttl time.Duration) error {
	if user == nil {
		return errors.New("cannot cache a nil user")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.sweep(now)

	entry := memoryEntry{user: *user}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}
	c.entries[tokenKey(token)] = entry

	return nil
}

func (c *memorySessionCache) Delete(_ context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, tokenKey(token))

	return nil
}

// sweep must be called with mu held.
func (c *memorySessionCache) sweep(now time.Time) {
	for key, entry := range c.entries {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}
