package ports

import (
	"context"

	"opsboard/internal/core/domain/model/inventory"
	"opsboard/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory items.
type InventoryRepository interface {
	// Add persists a new inventory item to storage.
	Add(ctx context.Context, aggregate *inventory.Item) error

	// Update persists changes to an existing inventory item.
	Update(ctx context.Context, aggregate *inventory.Item) error

	// Get retrieves an inventory item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error)
}
