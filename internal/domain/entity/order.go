package entity

import "time"

// OrderStatus is the lifecycle stage of an order as reported by the backend.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusConfirmed: 1,
	OrderStatusShipped:   2,
	OrderStatusDelivered: 3,
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusRank[s]

	return ok || s == OrderStatusCancelled
}

// IsFinal reports whether no further transition is offered.
func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the dashboard offers moving an order to next.
// Only forward moves are offered, and cancellation only before shipping.
// The backend remains the authority on the actual transition.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsFinal() || !next.IsValid() {
		return false
	}
	if next == OrderStatusCancelled {
		return s == OrderStatusPending || s == OrderStatusConfirmed
	}

	return orderStatusRank[next] > orderStatusRank[s]
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"` // Minor currency units.
}

// Total returns the line total in minor units.
func (i OrderItem) Total() int64 {
	return int64(i.Quantity) * i.UnitPrice
}

// Order is a customer order placed with one store.
type Order struct {
	ID         string      `json:"id"`
	Number     string      `json:"number"`
	CustomerID string      `json:"customer_id"`
	StoreID    string      `json:"store_id"`
	StoreName  string      `json:"store_name,omitempty"`
	Status     OrderStatus `json:"status"`
	Currency   string      `json:"currency"`
	Items      []OrderItem `json:"items"`
	Total      int64       `json:"total"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OrderFilter narrows an order listing.
type OrderFilter struct {
	StoreID  string
	Status   OrderStatus
	Page     int
	PageSize int
}

// OrderPage is one page of orders.
type OrderPage struct {
	Items    []*Order `json:"items"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size,omitempty"`
}
