package entity

import "time"

// KPI is a single headline metric shown on the admin console.
type KPI struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Delta float64 `json:"delta"` // Change against the previous period.
}

// AlertSeverity orders admin alerts.
type AlertSeverity string

const (
	AlertInfo     AlertSeverity = "info"
	AlertWarning  AlertSeverity = "warning"
	AlertCritical AlertSeverity = "critical"
)

// Alert is an operational alert raised by the backend.
type Alert struct {
	ID        string        `json:"id"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"created_at"`
}

// ActivityLog is an audit record of an action taken through this service.
type ActivityLog struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actor_id"`
	ActorRole  Role           `json:"actor_role"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Activity action names.
const (
	ActionBrandingUploaded     = "store.branding_uploaded"
	ActionOrderStatusChanged   = "order.status_changed"
	ActionPartnershipRequested = "partnership.requested"
	ActionPartnershipResponded = "partnership.responded"
)

// ActivityFilter narrows an activity log listing.
type ActivityFilter struct {
	ActorID  string
	Action   string
	Page     int
	PageSize int
}
