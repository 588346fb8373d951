package entity

import "time"

// PartnershipStatus is the state of a producer/processor relationship.
type PartnershipStatus string

const (
	PartnershipPending    PartnershipStatus = "pending"
	PartnershipActive     PartnershipStatus = "active"
	PartnershipRejected   PartnershipStatus = "rejected"
	PartnershipTerminated PartnershipStatus = "terminated"
)

// PartnershipDecision is a store owner's answer to a pending request.
type PartnershipDecision string

const (
	PartnershipAccept    PartnershipDecision = "accept"
	PartnershipReject    PartnershipDecision = "reject"
	PartnershipTerminate PartnershipDecision = "terminate"
)

// IsValid checks if the PartnershipDecision is a valid value.
func (d PartnershipDecision) IsValid() bool {
	switch d {
	case PartnershipAccept, PartnershipReject, PartnershipTerminate:
		return true
	default:
		return false
	}
}

// Partnership links a producer store to a processor store.
type Partnership struct {
	ID               string            `json:"id"`
	ProducerStoreID  string            `json:"producer_store_id"`
	ProcessorStoreID string            `json:"processor_store_id"`
	Status           PartnershipStatus `json:"status"`
	Note             string            `json:"note,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// Involves reports whether the store is either side of the partnership.
func (p *Partnership) Involves(storeID string) bool {
	return p.ProducerStoreID == storeID || p.ProcessorStoreID == storeID
}
