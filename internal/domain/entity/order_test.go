package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusShipped))
	assert.True(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusCancelled))
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusDelivered))

	assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusCancelled))
	assert.False(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusPending))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusShipped))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusPending))
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatus("lost")))
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusPending))
}

func TestOrderItem_Total(t *testing.T) {
	assert.Equal(t, int64(1500), OrderItem{Quantity: 3, UnitPrice: 500}.Total())
}

func TestPartnership_Involves(t *testing.T) {
	p := &Partnership{ProducerStoreID: "a", ProcessorStoreID: "b"}

	assert.True(t, p.Involves("a"))
	assert.True(t, p.Involves("b"))
	assert.False(t, p.Involves("c"))
}
