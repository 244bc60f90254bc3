package ports

import (
	"context"

	"opsboard/internal/core/domain/model/activity"
)

// ActivityRepository defines the persistence contract for activity feed entries.
// The feed is append-only; entries are never updated.
type ActivityRepository interface {
	// Add persists a new activity feed entry.
	Add(ctx context.Context, aggregate *activity.Activity) error
}
