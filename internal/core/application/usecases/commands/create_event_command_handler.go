package commands

import (
	"context"
	"fmt"
	"log/slog"

	"opsboard/internal/core/domain/model/activity"
	"opsboard/internal/core/domain/model/event"
	"opsboard/internal/core/domain/services"
)

// CreateEventCommandHandler handles the business logic for event creation.
// New events start in "pending" status. Creation emits an informational
// notification and an activity feed entry best-effort.
type CreateEventCommandHandler struct {
	uowFactory EventUoWFactory
	policy     services.NotificationPolicy
	emitter    emitter
}

// NewCreateEventCommandHandler creates a handler for event creation operations.
func NewCreateEventCommandHandler(
	uowFactory EventUoWFactory,
	emitFactory EmitUoWFactory,
	logger *slog.Logger,
) CreateEventCommandHandler {
	return CreateEventCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewNotificationPolicy(),
		emitter:    newEmitter(emitFactory, logger),
	}
}

// Handle processes the event creation command.
func (h CreateEventCommandHandler) Handle(ctx context.Context, cmd CreateEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	e, err := event.NewEvent(
		cmd.EventID(),
		cmd.Title(), cmd.Client(), cmd.Venue(),
		cmd.StartDate(), cmd.EndDate(),
		cmd.ContactDetails(),
	)
	if err != nil {
		return err
	}

	e.SetDescription(cmd.Description())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EventRepository().Add(ctx, e); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.emitter.emit(ctx,
		h.policy.EventCreated(e),
		fmt.Sprintf("New event %q created", e.Title()),
		activity.TypeEvent)

	return nil
}
