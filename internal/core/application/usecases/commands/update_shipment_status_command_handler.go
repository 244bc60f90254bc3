package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"opsboard/internal/core/domain/model/activity"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/pkg/errs"
)

var ErrShipmentNotFound = errors.New("no shipment found")

// UpdateShipmentStatusCommandHandler orchestrates the shipment status workflow.
// Fetches the shipment, applies the transition through the rule table (which
// rejects illegal moves and missing notes before anything is written), and
// persists the new status together with the updated history log in one
// transaction. After commit it emits the status-change notification and an
// activity entry best-effort.
//
// There is no optimistic concurrency check: two operators racing on the same
// shipment is last-write-wins, matching the store's own semantics.
//
// Example:
//
//	handler := NewUpdateShipmentStatusCommandHandler(uowFactory, emitFactory, logger)
//	cmd, _ := NewUpdateShipmentStatusCommand(id, shipment.PickedUp, "driver signed manifest")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrShipmentNotFound):
//	    // 404
//	case errors.Is(err, shipment.ErrIllegalTransition):
//	    // 409
//	case errors.Is(err, shipment.ErrNoteIsRequired):
//	    // 400
//	}
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     services.NotificationPolicy
	emitter    emitter
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status workflow operations.
func NewUpdateShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	emitFactory EmitUoWFactory,
	logger *slog.Logger,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewNotificationPolicy(),
		emitter:    newEmitter(emitFactory, logger),
	}
}

// Handle processes the status change command.
// Returns ErrShipmentNotFound when the shipment does not exist, or the
// aggregate's transition errors when the rule table rejects the move. A
// persistence failure rolls the whole change back. A failed notification emit
// does not fail the command.
func (h UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
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

	if err = s.ApplyTransition(cmd.TargetStatus(), cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.emitter.emit(ctx,
		h.policy.ShipmentStatusChanged(s.TrackingNumber(), s.Status()),
		fmt.Sprintf("Shipment %s marked as %s", s.TrackingNumber(), s.Status()),
		activity.TypeDelivery)

	return nil
}
