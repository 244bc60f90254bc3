package shipmentrepo

import (
	"context"
	"encoding/json"
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker defines the interface for collecting change events.
type changeTracker interface {
	TrackChange(event ports.ChangeEvent)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker changeTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.trackChange("INSERT", dto)
	return nil
}

// Update saves an existing shipment to the database. Every column is written,
// including zero values, so cleared optional fields actually clear.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.trackChange("UPDATE", dto)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves a shipment by its tracking number. Tracking
// numbers are not guaranteed unique; the most recently created match wins.
func (r *GormShipmentRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
) (*shipment.Shipment, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&dto, "tracking_number = ?", trackingNumber.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", trackingNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShipmentRepository) trackChange(action string, dto ShipmentDTO) {
	payload, err := json.Marshal(dto)
	if err != nil {
		payload = nil
	}

	r.tracker.TrackChange(ports.ChangeEvent{
		Collection: ports.ShipmentsCollection,
		Action:     action,
		RecordID:   dto.ID.String(),
		Payload:    payload,
	})
}
