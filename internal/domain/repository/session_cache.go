package repository

import (
	"context"
	"errors"
	"time"

	"bazaar/internal/domain/entity"
)

// ErrSessionNotFound is returned when no cached profile exists for a token.
var ErrSessionNotFound = errors.New("session not found")

// SessionCache keeps the backend profile of a signed-in user for the life of its token.
// Implementations must never store the raw token.
type SessionCache interface {
	Get(ctx context.Context, token string) (*entity.User, error)
	Set(ctx context.Context, token string, user *entity.User, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}
