package service

import "bazaar/internal/domain/entity"

// ReceiptRenderer renders a printable receipt for an order.
type ReceiptRenderer interface {
	RenderReceipt(order *entity.Order) ([]byte, error)
}
