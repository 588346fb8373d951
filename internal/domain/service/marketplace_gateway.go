package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// LoginRequest is the credential pair forwarded to the backend.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the sign-up payload forwarded to the backend.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountType string `json:"user_type"`
}

// StoreImageRequest tells the backend about a newly uploaded branding image.
type StoreImageRequest struct {
	Kind entity.ImageKind `json:"kind"`
	URL  string           `json:"url"`
}

// PartnershipRequest asks a processor store to partner with a producer store.
type PartnershipRequest struct {
	ProducerStoreID  string `json:"producer_store_id"`
	ProcessorStoreID string `json:"processor_store_id"`
	Note             string `json:"note,omitempty"`
}

// MarketplaceGateway is the typed client of the marketplace REST backend.
// Every call forwards the caller's bearer token; the backend authorizes it.
type MarketplaceGateway interface {
	Login(ctx context.Context, req LoginRequest) (*entity.AuthSession, error)
	Register(ctx context.Context, req RegisterRequest) (*entity.AuthSession, error)
	CurrentUser(ctx context.Context, token string) (*entity.User, error)

	ListOrders(ctx context.Context, token string, filter entity.OrderFilter) (*entity.OrderPage, error)
	GetOrder(ctx context.Context, token, orderID string) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status entity.OrderStatus) (*entity.Order, error)

	SearchStores(ctx context.Context, token, query string, page int) (*entity.StorePage, error)
	GetStore(ctx context.Context, token, storeID string) (*entity.Store, error)
	AttachStoreImage(ctx context.Context, token, storeID string, req StoreImageRequest) (*entity.Store, error)

	ListPartnerships(ctx context.Context, token, storeID string) ([]*entity.Partnership, error)
	RequestPartnership(ctx context.Context, token string, req PartnershipRequest) (*entity.Partnership, error)
	RespondPartnership(ctx context.Context, token, partnershipID string, decision entity.PartnershipDecision) (*entity.Partnership, error)

	AdminKPIs(ctx context.Context, token string) ([]entity.KPI, error)
	AdminAlerts(ctx context.Context, token string) ([]entity.Alert, error)
}
