package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"
	"opsboard/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrPickupAddressIsRequired   = errors.New("pickup address is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// CreateShipmentCommand represents a request to register a new shipment.
// Required fields are the service type and both addresses; weight, event link,
// and inventory links are optional and may be attached later.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, shipment.ServiceExpress, "12 Dock Rd", "3 Venue Sq")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, emitFactory, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID       kernel.UUID
	serviceType      shipment.ServiceType
	pickupAddress    string
	deliveryAddress  string
	packageWeight    *float64
	eventID          *kernel.UUID
	inventoryItemIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates that the ID is valid, the service type is a member of the valid
// set, and both addresses are non-empty.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	serviceType shipment.ServiceType,
	pickupAddress, deliveryAddress string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setServiceType(serviceType),
		cmd.setPickupAddress(pickupAddress),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ServiceType returns the booked service level.
func (c CreateShipmentCommand) ServiceType() shipment.ServiceType {
	return c.serviceType
}

// PickupAddress returns the pickup address.
func (c CreateShipmentCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the delivery address.
func (c CreateShipmentCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PackageWeight returns the optional package weight, nil when not set.
func (c CreateShipmentCommand) PackageWeight() *float64 {
	return c.packageWeight
}

// EventID returns the optional linked event, nil when not set.
func (c CreateShipmentCommand) EventID() *kernel.UUID {
	return c.eventID
}

// InventoryItemIDs returns the linked inventory items, possibly empty.
func (c CreateShipmentCommand) InventoryItemIDs() []kernel.UUID {
	return c.inventoryItemIDs
}

// WithPackageWeight attaches an optional package weight to the command.
func (c CreateShipmentCommand) WithPackageWeight(weight float64) CreateShipmentCommand {
	c.packageWeight = &weight
	return c
}

// WithEvent attaches an optional event link to the command.
func (c CreateShipmentCommand) WithEvent(eventID kernel.UUID) CreateShipmentCommand {
	c.eventID = &eventID
	return c
}

// WithInventoryItems attaches inventory item links to the command.
func (c CreateShipmentCommand) WithInventoryItems(itemIDs []kernel.UUID) CreateShipmentCommand {
	c.inventoryItemIDs = itemIDs
	return c
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setServiceType(serviceType shipment.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateShipmentCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupAddress = pickupAddress
	return nil
}

func (c *CreateShipmentCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
