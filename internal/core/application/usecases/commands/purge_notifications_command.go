package commands

import (
	"errors"
	"time"

	"opsboard/internal/pkg/guard"
)

var (
	ErrPurgeNotificationsCommandIsNotConstructed = errors.New(
		"PurgeNotificationsCommand must be created via NewPurgeNotificationsCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be positive")
)

// PurgeNotificationsCommand represents a request to delete read notifications
// older than the retention window. Unread notifications are never touched no
// matter how old they are.
type PurgeNotificationsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeNotificationsCommand creates a command to sweep old read
// notifications. The retention window must be positive.
func NewPurgeNotificationsCommand(retention time.Duration) (PurgeNotificationsCommand, error) {
	cmd := PurgeNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return PurgeNotificationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeNotificationsCommandIsNotConstructed if validation fails.
func (c PurgeNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeNotificationsCommandIsNotConstructed)
}

// Retention returns how long read notifications are kept.
func (c PurgeNotificationsCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeNotificationsCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return ErrRetentionIsInvalid
	}

	c.retention = retention
	return nil
}
