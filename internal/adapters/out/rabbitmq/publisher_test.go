package rabbitmq

import (
	"testing"

	"restaurant/internal/core/domain/events"

	"github.com/stretchr/testify/assert"
)

func TestRoutingKey_SplitsAudienceFromEventName(t *testing.T) {
	testCases := []struct {
		eventType string
		expected  string
	}{
		{events.OrderCreated, "order.created"},
		{events.OrderUpdated, "order.updated"},
		{events.OrderStatusChanged, "order.status_changed"},
		{events.KitchenNewOrder, "kitchen.new_order"},
		{events.DeliveryReadyOrder, "delivery.ready_order"},
		{events.DeliveryAssigned, "delivery.assigned"},
		{events.DeliveryStatusChanged, "delivery.status_changed"},
		{events.DeliveryStaffNewAssignment, "delivery.staff_new_assignment"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, routingKey(tc.eventType), "event type %s", tc.eventType)
	}
}

func TestRoutingKey_NoUnderscore_LowercasesWholeName(t *testing.T) {
	assert.Equal(t, "heartbeat", routingKey("HEARTBEAT"))
}
