package shipment_test

import (
	"fmt"
	"testing"

	"opsboard/internal/core/domain/model/shipment"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(shipment.Unknown))
		assert.Equal(t, 1, int(shipment.Processing))
		assert.Equal(t, 2, int(shipment.PickedUp))
		assert.Equal(t, 3, int(shipment.InTransit))
		assert.Equal(t, 4, int(shipment.OutForDelivery))
		assert.Equal(t, 5, int(shipment.Delivered))
		assert.Equal(t, 6, int(shipment.Delayed))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []shipment.Status{
			shipment.Processing,
			shipment.PickedUp,
			shipment.InTransit,
			shipment.OutForDelivery,
			shipment.Delivered,
			shipment.Delayed,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := shipment.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		err := shipment.Status(99).Validate()

		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[shipment.Status]string{
		shipment.Unknown:        "unknown",
		shipment.Processing:     "processing",
		shipment.PickedUp:       "picked_up",
		shipment.InTransit:      "in_transit",
		shipment.OutForDelivery: "out_for_delivery",
		shipment.Delivered:      "delivered",
		shipment.Delayed:        "delayed",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}

	assert.Equal(t, "unknown", shipment.Status(42).String())
}

func TestStatus_HistoryCode(t *testing.T) {
	assert.Equal(t, "PICKED_UP", shipment.PickedUp.HistoryCode())
	assert.Equal(t, "OUT_FOR_DELIVERY", shipment.OutForDelivery.HistoryCode())
	assert.Equal(t, "DELAYED", shipment.Delayed.HistoryCode())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid wire name", func(t *testing.T) {
		for _, name := range []string{
			"processing", "picked_up", "in_transit", "out_for_delivery", "delivered", "delayed",
		} {
			status, err := shipment.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should reject values outside the closed set", func(t *testing.T) {
		for _, name := range []string{"", "shipped", "PROCESSING", "Delivered"} {
			_, err := shipment.StatusFromString(name)
			require.Error(t, err, "expected %q to be rejected", name)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, shipment.Delivered.IsTerminal())

	for _, status := range []shipment.Status{
		shipment.Processing, shipment.PickedUp, shipment.InTransit, shipment.OutForDelivery, shipment.Delayed,
	} {
		assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
	}
}
