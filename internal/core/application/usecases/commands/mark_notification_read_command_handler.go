package commands

import (
	"context"
	"errors"

	"opsboard/internal/pkg/errs"
)

var ErrNotificationNotFound = errors.New("no notification found")

// MarkNotificationReadCommandHandler flags a single notification as read.
// Marking an already-read notification is a no-op that still succeeds.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for mark-read operations.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-read command.
// Returns ErrNotificationNotFound when the notification does not exist.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
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

	notificationRepo := uow.NotificationRepository()

	n, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNotificationNotFound
	}
	if err != nil {
		return err
	}

	n.MarkRead()

	if err = notificationRepo.Update(ctx, n); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
