package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

var ErrDeleteNotificationCommandIsNotConstructed = errors.New(
	"DeleteNotificationCommand must be created via NewDeleteNotificationCommand constructor",
)

// DeleteNotificationCommand represents a request to permanently remove one notification.
type DeleteNotificationCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteNotificationCommand creates a command to delete a notification.
func NewDeleteNotificationCommand(notificationID kernel.UUID) (DeleteNotificationCommand, error) {
	cmd := DeleteNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNotificationID(notificationID); err != nil {
		return DeleteNotificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteNotificationCommandIsNotConstructed if validation fails.
func (c DeleteNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNotificationCommandIsNotConstructed)
}

// NotificationID returns the unique identifier for the notification.
func (c DeleteNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c *DeleteNotificationCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}

	c.notificationID = notificationID
	return nil
}
