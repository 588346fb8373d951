package usecase

import (
	"context"
	"io"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// UploadBrandingInput carries one branding image upload.
type UploadBrandingInput struct {
	Actor    Actor
	Kind     entity.ImageKind
	Filename string
	Size     int64 // As declared by the client; the body is still measured.
	Body     io.Reader
}

// UpdateOrderStatusInput moves a store order to a new status.
type UpdateOrderStatusInput struct {
	Actor   Actor
	OrderID string
	Status  entity.OrderStatus
}

// RequestPartnershipInput asks a processor store to partner with the actor's store.
type RequestPartnershipInput struct {
	Actor            Actor
	ProcessorStoreID string
	Note             string
}

// RespondPartnershipInput answers a partnership request.
type RespondPartnershipInput struct {
	Actor         Actor
	PartnershipID string
	Decision      entity.PartnershipDecision
}

// --- Output DTOs ---

// UploadBrandingOutput returns the updated store and the recorded upload.
type UploadBrandingOutput struct {
	Store *entity.Store      `json:"store"`
	Image *entity.StoreImage `json:"image"`
}

// StoreDashboardUsecase defines the store-owner dashboard operations.
type StoreDashboardUsecase interface {
	UploadBranding(ctx context.Context, input UploadBrandingInput) (*UploadBrandingOutput, error)
	ListBranding(ctx context.Context, actor Actor) ([]*entity.StoreImage, error)

	ListStoreOrders(ctx context.Context, actor Actor, filter entity.OrderFilter) (*entity.OrderPage, error)
	UpdateOrderStatus(ctx context.Context, input UpdateOrderStatusInput) (*entity.Order, error)

	ListPartnerships(ctx context.Context, actor Actor) ([]*entity.Partnership, error)
	RequestPartnership(ctx context.Context, input RequestPartnershipInput) (*entity.Partnership, error)
	RespondPartnership(ctx context.Context, input RespondPartnershipInput) (*entity.Partnership, error)
}
