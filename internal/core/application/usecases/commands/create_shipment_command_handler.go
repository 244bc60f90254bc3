package commands

import (
	"context"
	"fmt"
	"log/slog"

	"opsboard/internal/core/domain/model/activity"
	"opsboard/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// New shipments start in "processing" status with a freshly generated tracking
// number, and the creation is recorded on the activity feed.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	emitter    emitter
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	emitFactory EmitUoWFactory,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		emitter:    newEmitter(emitFactory, logger),
	}
}

// Handle processes the shipment creation command.
// Persists the new shipment in a transaction, then records the creation on the
// activity feed best-effort.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := shipment.NewShipment(cmd.ShipmentID(), cmd.ServiceType(), cmd.PickupAddress(), cmd.DeliveryAddress())
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

	if len(cmd.InventoryItemIDs()) > 0 {
		if err = s.SetInventoryItems(cmd.InventoryItemIDs()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.emitter.recordActivity(ctx,
		fmt.Sprintf("New shipment %s created", s.TrackingNumber()),
		activity.TypeDelivery)

	return nil
}
