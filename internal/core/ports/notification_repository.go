package ports

import (
	"context"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
// Notifications are append-only apart from the read flag; deletion only
// happens on explicit operator action or through the retention sweep.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification (read flag only).
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// MarkAllRead flags every unread notification as read.
	// Returns the number of notifications affected.
	MarkAllRead(ctx context.Context) (int64, error)

	// Delete removes a notification permanently.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteReadOlderThan removes read notifications created before the cutoff.
	// Unread notifications are never touched. Returns the number removed.
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
