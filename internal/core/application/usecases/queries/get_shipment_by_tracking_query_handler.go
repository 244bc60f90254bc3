package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentByTrackingQueryHandler looks a shipment up by tracking number.
type GetShipmentByTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByTrackingQueryHandler creates a handler for tracking-number lookups.
func NewGetShipmentByTrackingQueryHandler(db *gorm.DB) GetShipmentByTrackingQueryHandler {
	return GetShipmentByTrackingQueryHandler{db: db}
}

// Handle executes the lookup. Returns ErrShipmentNotFound when no shipment
// carries the requested tracking number.
func (h GetShipmentByTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingQuery,
) (GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentsQueryResponse{}, err
	}

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
		WHERE tracking_number = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.TrackingNumber()).Rows()
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetShipmentsQueryResponse{}, err
		}
		return GetShipmentsQueryResponse{}, ErrShipmentNotFound
	}

	response, err := scanShipmentRow(rows)
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	return response, rows.Err()
}
