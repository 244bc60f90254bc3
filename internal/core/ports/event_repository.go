package ports

import (
	"context"

	"opsboard/internal/core/domain/model/event"
	"opsboard/internal/core/domain/model/kernel"
)

// EventRepository defines the persistence contract for event aggregates.
type EventRepository interface {
	// Add persists a new event aggregate to storage.
	Add(ctx context.Context, aggregate *event.Event) error

	// Update persists changes to an existing event aggregate.
	Update(ctx context.Context, aggregate *event.Event) error

	// Get retrieves an event aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*event.Event, error)
}
