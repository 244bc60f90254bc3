// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the repository pattern for the
// shipment aggregate, converting between domain entities and database rows.
package shipmentrepo

import (
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Statuses and service types are stored in their wire form so
// read queries and the change feed can serve them without mapping tables.
type ShipmentDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TrackingNumber   string         `gorm:"index" json:"tracking_number"`
	ServiceType      string         `json:"service_type"`
	PickupAddress    string         `json:"pickup_address"`
	DeliveryAddress  string         `json:"delivery_address"`
	PackageWeight    *float64       `json:"package_weight,omitempty"`
	EventID          *uuid.UUID     `gorm:"type:uuid;index" json:"event_id,omitempty"`
	InventoryItemIDs pq.StringArray `gorm:"type:text[]" json:"inventory_item_ids,omitempty"`
	Status           string         `gorm:"index" json:"status"`
	HistoryLog       string         `json:"history_log"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var eventID *uuid.UUID
	if id := aggregate.Event(); id != nil {
		raw := id.Bytes()
		eventID = &raw
	}

	var itemIDs pq.StringArray
	for _, id := range aggregate.InventoryItems() {
		itemIDs = append(itemIDs, id.String())
	}

	return ShipmentDTO{
		ID:               aggregate.ID().Bytes(),
		TrackingNumber:   aggregate.TrackingNumber().String(),
		ServiceType:      aggregate.ServiceType().String(),
		PickupAddress:    aggregate.PickupAddress(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		PackageWeight:    aggregate.PackageWeight(),
		EventID:          eventID,
		InventoryItemIDs: itemIDs,
		Status:           aggregate.Status().String(),
		HistoryLog:       aggregate.HistoryLog(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// The aggregate re-validates every invariant on restore, so rows written by
// other writers cannot smuggle in an invalid status or address.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	serviceType, err := shipment.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var eventID *kernel.UUID
	if dto.EventID != nil {
		linked, eventErr := kernel.UUIDFromBytes((*dto.EventID)[:])
		if eventErr != nil {
			return nil, eventErr
		}
		eventID = &linked
	}

	var itemIDs []kernel.UUID
	for _, raw := range dto.InventoryItemIDs {
		itemID, itemErr := kernel.UUIDFromString(raw)
		if itemErr != nil {
			return nil, itemErr
		}
		itemIDs = append(itemIDs, itemID)
	}

	return shipment.RestoreShipment(
		id,
		trackingNumber,
		serviceType,
		dto.PickupAddress, dto.DeliveryAddress,
		dto.PackageWeight,
		eventID,
		itemIDs,
		status,
		dto.HistoryLog,
	)
}
