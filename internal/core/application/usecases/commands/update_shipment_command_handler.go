package commands

import (
	"context"
	"errors"

	"opsboard/internal/pkg/errs"
)

// UpdateShipmentCommandHandler handles the business logic for editing a
// shipment's linkage fields. Status and history are never touched here.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for shipment edit operations.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment edit command.
// Returns ErrShipmentNotFound when the shipment does not exist.
func (h UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrShipmentNotFound
	}
	if err != nil {
		return err
	}

	if cmd.PackageWeight() != nil {
		if err = s.SetPackageWeight(*cmd.PackageWeight()); err != nil {
			return err
		}
	}

	if cmd.EventID() != nil {
		if err = s.AttachEvent(*cmd.EventID()); err != nil {
			return err
		}
	}

	if cmd.InventoryItemIDs() != nil {
		if err = s.SetInventoryItems(cmd.InventoryItemIDs()); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
