package queries

import (
	"context"
	"database/sql"

	"opsboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryItemsQueryHandler retrieves inventory information from the database.
type GetInventoryItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryItemsQueryHandler creates a handler for inventory retrieval queries.
func NewGetInventoryItemsQueryHandler(db *gorm.DB) GetInventoryItemsQueryHandler {
	return GetInventoryItemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all inventory items, ordered by name.
func (h GetInventoryItemsQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryItemsQuery,
) ([]GetInventoryItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetInventoryItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			description,
			category,
			stock_level,
			unit_price,
			is_pi_item,
			low_stock_threshold
		FROM inventory
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetInventoryItemsQueryResponse
		var id uuid.UUID
		var unitPrice sql.NullFloat64
		var threshold sql.NullInt64

		err = rows.Scan(
			&id,
			&response.SKU,
			&response.Name,
			&response.Description,
			&response.Category,
			&response.StockLevel,
			&unitPrice,
			&response.IsPIItem,
			&threshold,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = itemID

		if unitPrice.Valid {
			response.UnitPrice = &unitPrice.Float64
		}

		if threshold.Valid {
			value := int(threshold.Int64)
			response.LowStockThreshold = &value
			response.IsLowStock = response.StockLevel <= value
		}

		items = append(items, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
