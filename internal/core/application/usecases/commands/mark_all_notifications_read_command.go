package commands

import (
	"errors"

	"opsboard/internal/pkg/guard"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand represents a request to flag every unread
// notification as read in one sweep.
//
// Example:
//
//	cmd := NewMarkAllNotificationsReadCommand()
//	handler := NewMarkAllNotificationsReadCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("mark all read failed: %v", err)
//	}
type MarkAllNotificationsReadCommand struct {
	guard guard.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a new mark-all-read command.
// This is a parameterless command; the sweep covers every unread notification.
func NewMarkAllNotificationsReadCommand() MarkAllNotificationsReadCommand {
	return MarkAllNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkAllNotificationsReadCommandIsNotConstructed if validation fails.
func (c *MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(
		ErrMarkAllNotificationsReadCommandIsNotConstructed,
	)
}
