package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// SearchInput defines a storefront search. Lat and Lng are optional but must come together.
type SearchInput struct {
	Query string
	Page  int
	Lat   *float64
	Lng   *float64
}

// StorefrontQROutput is a rendered storefront QR code.
type StorefrontQROutput struct {
	PNG []byte

	// Public is false when an unpublished store is previewed by its owner or an admin.
	Public bool
}

// StorefrontUsecase defines customer browsing operations.
type StorefrontUsecase interface {
	Search(ctx context.Context, actor Actor, input SearchInput) (*entity.StorePage, error)
	GetStorefront(ctx context.Context, actor Actor, storeID string) (*entity.Store, error)

	// StorefrontQR returns a PNG QR code pointing at the public storefront page.
	StorefrontQR(ctx context.Context, actor Actor, storeID string) (*StorefrontQROutput, error)
}
