package queries

import (
	"context"
	"database/sql"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetShipmentsQueryHandler retrieves shipments from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all shipments, newest first.
// The stored history log is decoded into entries on the way out; malformed
// lines are dropped, never surfaced as errors.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			service_type,
			pickup_address,
			delivery_address,
			package_weight,
			event_id,
			inventory_item_ids,
			status,
			history_log,
			created_at
		FROM shipments
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanShipmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

// scanShipmentRow maps one shipments row onto the read model. Shared with the
// tracking-number lookup, which selects the same column list.
func scanShipmentRow(rows *sql.Rows) (GetShipmentsQueryResponse, error) {
	var response GetShipmentsQueryResponse
	var id uuid.UUID
	var eventID *uuid.UUID
	var itemIDs pq.StringArray
	var historyLog sql.NullString
	var packageWeight sql.NullFloat64
	var createdAt time.Time

	err := rows.Scan(
		&id,
		&response.TrackingNumber,
		&response.ServiceType,
		&response.PickupAddress,
		&response.DeliveryAddress,
		&packageWeight,
		&eventID,
		&itemIDs,
		&response.Status,
		&historyLog,
		&createdAt,
	)
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}
	response.ID = shipmentID

	if eventID != nil {
		linked, idErr := kernel.UUIDFromBytes(eventID[:])
		if idErr != nil {
			return GetShipmentsQueryResponse{}, idErr
		}
		response.EventID = &linked
	}

	for _, raw := range itemIDs {
		itemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return GetShipmentsQueryResponse{}, idErr
		}
		response.InventoryItemIDs = append(response.InventoryItemIDs, itemID)
	}

	if packageWeight.Valid {
		response.PackageWeight = &packageWeight.Float64
	}

	if historyLog.Valid {
		response.History = shipment.DecodeLog(historyLog.String)
	}

	response.CreatedAt = createdAt
	return response, nil
}
