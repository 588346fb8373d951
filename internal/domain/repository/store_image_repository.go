package repository

import (
	"context"

	"bazaar/internal/domain/entity"
)

// StoreImageRepository tracks branding uploads so stale blobs can be traced back to a store.
type StoreImageRepository interface {
	// Create records a new upload.
	Create(ctx context.Context, image *entity.StoreImage) error

	// ListByStore returns the uploads of one store, newest first.
	ListByStore(ctx context.Context, storeID string) ([]*entity.StoreImage, error)
}
