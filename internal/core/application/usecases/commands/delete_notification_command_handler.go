package commands

import (
	"context"
	"errors"

	"opsboard/internal/pkg/errs"
)

// DeleteNotificationCommandHandler permanently removes a notification.
type DeleteNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewDeleteNotificationCommandHandler creates a handler for notification deletion.
func NewDeleteNotificationCommandHandler(uowFactory NotificationUoWFactory) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Returns ErrNotificationNotFound when the notification does not exist.
func (h DeleteNotificationCommandHandler) Handle(ctx context.Context, cmd DeleteNotificationCommand) error {
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

	err := uow.NotificationRepository().Delete(ctx, cmd.NotificationID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNotificationNotFound
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
