package commands

import (
	"context"
	"time"
)

// PurgeNotificationsCommandHandler deletes read notifications that fell out
// of the retention window. Runs from the retention job; an inbox with nothing
// old enough is a successful no-op.
type PurgeNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewPurgeNotificationsCommandHandler creates a handler for retention sweeps.
func NewPurgeNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
) PurgeNotificationsCommandHandler {
	return PurgeNotificationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command. Returns the number of notifications
// removed so the caller can log sweep activity.
func (h PurgeNotificationsCommandHandler) Handle(ctx context.Context, cmd PurgeNotificationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.Retention())
	removed, err := uow.NotificationRepository().DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
