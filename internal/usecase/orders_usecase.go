package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// OrdersUsecase defines the customer's view of their own orders.
type OrdersUsecase interface {
	ListMyOrders(ctx context.Context, token string, filter entity.OrderFilter) (*entity.OrderPage, error)
	GetOrder(ctx context.Context, token, orderID string) (*entity.Order, error)

	// Receipt renders the order as a PDF document.
	Receipt(ctx context.Context, token, orderID string) ([]byte, error)
}
