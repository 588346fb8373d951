// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
)

// ActivityRepository persists the audit trail shown on the admin console.
type ActivityRepository interface {
	// Create appends a new activity record. ID and CreatedAt are assigned when empty.
	Create(ctx context.Context, log *entity.ActivityLog) error

	// List returns one page of activity, newest first, and the total number of matches.
	List(ctx context.Context, filter entity.ActivityFilter) ([]*entity.ActivityLog, int64, error)

	// CountSince counts activity records created at or after the given time.
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
