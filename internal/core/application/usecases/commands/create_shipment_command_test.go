package commands_test

import (
	"testing"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewCreateShipmentCommand(id, shipment.ServiceExpress, "12 Dock Rd", "88 Venue Ave")
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.ShipmentID().IsEqual(id))
		assert.Equal(t, shipment.ServiceExpress, cmd.ServiceType())
		assert.Nil(t, cmd.PackageWeight())
		assert.Nil(t, cmd.EventID())
		assert.Empty(t, cmd.InventoryItemIDs())
	})

	t.Run("should attach optional fields", func(t *testing.T) {
		eventID := kernel.NewUUID()
		itemID := kernel.NewUUID()
		cmd, err := commands.NewCreateShipmentCommand(
			kernel.NewUUID(), shipment.ServiceStandard, "12 Dock Rd", "88 Venue Ave")
		require.NoError(t, err)

		cmd = cmd.WithPackageWeight(12.5).
			WithEvent(eventID).
			WithInventoryItems([]kernel.UUID{itemID})

		require.NotNil(t, cmd.PackageWeight())
		assert.InDelta(t, 12.5, *cmd.PackageWeight(), 0.001)
		require.NotNil(t, cmd.EventID())
		assert.True(t, cmd.EventID().IsEqual(eventID))
		assert.Len(t, cmd.InventoryItemIDs(), 1)
	})

	t.Run("should reject empty pickup address", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), shipment.ServiceStandard, "", "88 Venue Ave")
		require.ErrorIs(t, err, commands.ErrPickupAddressIsRequired)
	})

	t.Run("should reject empty delivery address", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), shipment.ServiceStandard, "12 Dock Rd", "")
		require.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
	})

	t.Run("should reject unknown service type", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), shipment.ServiceUnknown, "a", "b")
		require.Error(t, err)
	})

	t.Run("should reject zero-value command", func(t *testing.T) {
		var cmd commands.CreateShipmentCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateShipmentCommandIsNotConstructed)
	})
}
