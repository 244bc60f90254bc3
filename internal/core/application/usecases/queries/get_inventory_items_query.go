package queries

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

var ErrGetInventoryItemsQueryIsNotConstructed = errors.New(
	"GetInventoryItemsQuery must be created via NewGetInventoryItemsQuery constructor",
)

// GetInventoryItemsQuery retrieves every inventory item, ordered by name.
type GetInventoryItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInventoryItemsQuery creates a query to retrieve all inventory items.
func NewGetInventoryItemsQuery() GetInventoryItemsQuery {
	return GetInventoryItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInventoryItemsQueryIsNotConstructed if validation fails.
func (q GetInventoryItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryItemsQueryIsNotConstructed)
}

// GetInventoryItemsQueryResponse represents inventory information in the read
// model. IsLowStock mirrors the aggregate rule: a threshold is set and the
// stock level is at or below it.
type GetInventoryItemsQueryResponse struct {
	ID                kernel.UUID
	SKU               string
	Name              string
	Description       string
	Category          string
	StockLevel        int
	UnitPrice         *float64
	IsPIItem          bool
	LowStockThreshold *int
	IsLowStock        bool
}
