package services_test

import (
	"testing"
	"time"

	"opsboard/internal/core/domain/model/event"
	"opsboard/internal/core/domain/model/inventory"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/notification"
	"opsboard/internal/core/domain/model/shipment"
	"opsboard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationPolicy_ShipmentStatusChanged(t *testing.T) {
	policy := services.NewNotificationPolicy()
	tn, err := kernel.TrackingNumberFromString("QCS56789012042")
	require.NoError(t, err)

	t.Run("title carries tracking number", func(t *testing.T) {
		draft := policy.ShipmentStatusChanged(tn, shipment.PickedUp)

		assert.Equal(t, "Shipment QCS56789012042 Update", draft.Title)
		assert.Equal(t, "Shipment has been picked up", draft.Message)
		assert.Equal(t, notification.KindInfo, draft.Kind)
	})

	t.Run("delayed is a warning, all others info", func(t *testing.T) {
		statuses := []shipment.Status{
			shipment.Processing, shipment.PickedUp, shipment.InTransit,
			shipment.OutForDelivery, shipment.Delivered, shipment.Delayed,
		}

		for _, status := range statuses {
			draft := policy.ShipmentStatusChanged(tn, status)
			if status == shipment.Delayed {
				assert.Equal(t, notification.KindWarning, draft.Kind)
			} else {
				assert.Equal(t, notification.KindInfo, draft.Kind, "status %s", status)
			}
			assert.NotEmpty(t, draft.Message, "status %s should have a phrase", status)
		}
	})
}

func TestNotificationPolicy_Events(t *testing.T) {
	policy := services.NewNotificationPolicy()
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	e, err := event.NewEvent(
		kernel.NewUUID(), "Autumn Gala", "Acme Corp", "Grand Hall",
		start, start.Add(8*time.Hour),
		event.Contact{Name: "Dana Reyes", Email: "dana@example.com"},
	)
	require.NoError(t, err)

	t.Run("created", func(t *testing.T) {
		draft := policy.EventCreated(e)

		assert.Equal(t, "Event created", draft.Title)
		assert.Contains(t, draft.Message, "Autumn Gala")
		assert.Equal(t, notification.KindInfo, draft.Kind)
	})

	t.Run("updated without cancellation", func(t *testing.T) {
		draft := policy.EventUpdated(e, false)

		assert.Equal(t, "Event updated", draft.Title)
		assert.Equal(t, notification.KindInfo, draft.Kind)
	})

	t.Run("updated into cancelled", func(t *testing.T) {
		require.NoError(t, e.ChangeStatus(event.Cancelled))

		draft := policy.EventUpdated(e, true)

		assert.Equal(t, "Event cancelled", draft.Title)
		assert.Contains(t, draft.Message, "cancelled")
		assert.Equal(t, notification.KindWarning, draft.Kind)
	})
}

func TestNotificationPolicy_LowStock(t *testing.T) {
	policy := services.NewNotificationPolicy()

	t.Run("emits warning at or below threshold", func(t *testing.T) {
		item, err := inventory.NewItem(kernel.NewUUID(), "SKU-9", "Truss Section", 3)
		require.NoError(t, err)
		require.NoError(t, item.SetLowStockThreshold(3))

		draft, emit := policy.LowStock(item)

		require.True(t, emit)
		assert.Equal(t, "Low Stock Alert", draft.Title)
		assert.Equal(t, "Truss Section is running low on stock (3 remaining)", draft.Message)
		assert.Equal(t, notification.KindWarning, draft.Kind)
	})

	t.Run("emits nothing above threshold", func(t *testing.T) {
		item, err := inventory.NewItem(kernel.NewUUID(), "SKU-9", "Truss Section", 10)
		require.NoError(t, err)
		require.NoError(t, item.SetLowStockThreshold(3))

		_, emit := policy.LowStock(item)

		assert.False(t, emit)
	})

	t.Run("emits nothing without threshold", func(t *testing.T) {
		item, err := inventory.NewItem(kernel.NewUUID(), "SKU-9", "Truss Section", 0)
		require.NoError(t, err)

		_, emit := policy.LowStock(item)

		assert.False(t, emit)
	})
}
