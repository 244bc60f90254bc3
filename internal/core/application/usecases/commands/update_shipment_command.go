package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a request to change a shipment's linkage
// fields: package weight, event link, and inventory item links. Addresses,
// service type, and tracking number are fixed at creation; status moves only
// through UpdateShipmentStatusCommand.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID       kernel.UUID
	packageWeight    *float64
	eventID          *kernel.UUID
	inventoryItemIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to update a shipment's linkage fields.
// Nil weight and event leave the stored values untouched; a non-nil inventory
// slice replaces the stored links wholesale.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	packageWeight *float64,
	eventID *kernel.UUID,
	inventoryItemIDs []kernel.UUID,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		packageWeight:    packageWeight,
		eventID:          eventID,
		inventoryItemIDs: inventoryItemIDs,
		guard:            guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentCommandIsNotConstructed if validation fails.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// PackageWeight returns the new package weight, nil to keep the stored value.
func (c UpdateShipmentCommand) PackageWeight() *float64 {
	return c.packageWeight
}

// EventID returns the new event link, nil to keep the stored value.
func (c UpdateShipmentCommand) EventID() *kernel.UUID {
	return c.eventID
}

// InventoryItemIDs returns the replacement inventory links, nil to keep the
// stored value.
func (c UpdateShipmentCommand) InventoryItemIDs() []kernel.UUID {
	return c.inventoryItemIDs
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
