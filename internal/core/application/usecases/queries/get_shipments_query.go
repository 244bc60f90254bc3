// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"
	"opsboard/internal/pkg/guard"
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// GetShipmentsQuery retrieves every shipment, newest first.
//
// Example:
//
//	query := NewGetShipmentsQuery()
//	handler := NewGetShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve shipments: %w", err)
//	}
type GetShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a query to retrieve all shipments.
// This is a parameterless query; ordering is newest creation first.
func NewGetShipmentsQuery() GetShipmentsQuery {
	return GetShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentsQueryIsNotConstructed if validation fails.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// GetShipmentsQueryResponse represents shipment information in the read model.
// Statuses and service types carry their wire form ("picked_up", "same-day").
// History is the decoded history log, newest entry first; lines that do not
// parse are absent.
type GetShipmentsQueryResponse struct {
	ID               kernel.UUID
	TrackingNumber   string
	ServiceType      string
	PickupAddress    string
	DeliveryAddress  string
	PackageWeight    *float64
	EventID          *kernel.UUID
	InventoryItemIDs []kernel.UUID
	Status           string
	History          []shipment.HistoryEntry
	CreatedAt        time.Time
}
