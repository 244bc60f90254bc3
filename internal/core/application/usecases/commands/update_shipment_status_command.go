package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"
	"opsboard/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to move a shipment to a new
// status. The note travels with the command unvalidated: whether one is
// required is decided by the transition rule, inside the aggregate.
//
// Example:
//
//	cmd, err := NewUpdateShipmentStatusCommand(shipmentID, shipment.Delayed, "truck breakdown on I-40")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewUpdateShipmentStatusCommandHandler(uowFactory, emitFactory, logger)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, shipment.ErrIllegalTransition):
//	    // no rule allows this move from the current status
//	case errors.Is(err, shipment.ErrNoteIsRequired):
//	    // the matched rule demands a non-empty note
//	}
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	targetStatus shipment.Status
	note         string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to change a shipment's status.
// Validates that the ID is valid and the target status is a member of the
// valid set. The note may be empty here; note requirements belong to the rule.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.UUID,
	targetStatus shipment.Status,
	note string,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentStatusCommandIsNotConstructed if validation fails.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// TargetStatus returns the requested status.
func (c UpdateShipmentStatusCommand) TargetStatus() shipment.Status {
	return c.targetStatus
}

// Note returns the operator note accompanying the change.
func (c UpdateShipmentStatusCommand) Note() string {
	return c.note
}

func (c *UpdateShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentStatusCommand) setTargetStatus(targetStatus shipment.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
