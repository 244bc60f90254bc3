package ports

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// The store owns the shipment and its history log: every operation works on
// the value just fetched or about to be written, never on a cached copy.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// Writes are last-write-wins; there is no version check (see workflow docs).
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its tracking number.
	// Tracking numbers are not guaranteed unique; the first match wins.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*shipment.Shipment, error)
}
