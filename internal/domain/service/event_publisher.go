package service

import (
	"context"
	"time"
)

// Marketplace event types.
const (
	EventOrderStatusChanged   = "order.status_changed"
	EventPartnershipRequested = "partnership.requested"
	EventPartnershipResponded = "partnership.responded"
)

// MarketplaceEvent is published after a successful store-side action so the
// notifier worker can alert the affected store.
type MarketplaceEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	EventID    string            `json:"event_id"`
	Type       string            `json:"type"`
	StoreID    string            `json:"store_id"` // The store to notify
	EntityID   string            `json:"entity_id"`
	ActorID    string            `json:"actor_id"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMarketplaceEvent publishes an event for async processing
	PublishMarketplaceEvent(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
