package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"opsboard/internal/core/domain/model/activity"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/pkg/errs"
)

var ErrEventNotFound = errors.New("no event found")

// UpdateEventCommandHandler handles the business logic for event updates.
// An update that carries the "cancelled" status emits a cancellation
// warning, even when the event was already cancelled; every other update
// emits an informational notification.
type UpdateEventCommandHandler struct {
	uowFactory EventUoWFactory
	policy     services.NotificationPolicy
	emitter    emitter
}

// NewUpdateEventCommandHandler creates a handler for event update operations.
func NewUpdateEventCommandHandler(
	uowFactory EventUoWFactory,
	emitFactory EmitUoWFactory,
	logger *slog.Logger,
) UpdateEventCommandHandler {
	return UpdateEventCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewNotificationPolicy(),
		emitter:    newEmitter(emitFactory, logger),
	}
}

// Handle processes the event update command.
// Returns ErrEventNotFound when the event does not exist.
func (h UpdateEventCommandHandler) Handle(ctx context.Context, cmd UpdateEventCommand) error {
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

	eventRepo := uow.EventRepository()

	e, err := eventRepo.Get(ctx, cmd.EventID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrEventNotFound
	}
	if err != nil {
		return err
	}

	if err = e.UpdateDetails(
		cmd.Title(), cmd.Client(), cmd.Venue(),
		cmd.StartDate(), cmd.EndDate(),
		cmd.ContactDetails(),
	); err != nil {
		return err
	}

	e.SetDescription(cmd.Description())

	if err = e.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = eventRepo.Update(ctx, e); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.emitter.emit(ctx,
		h.policy.EventUpdated(e, e.IsCancelled()),
		fmt.Sprintf("Event %q updated", e.Title()),
		activity.TypeEvent)

	return nil
}
