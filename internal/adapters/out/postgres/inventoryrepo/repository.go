package inventoryrepo

import (
	"context"
	"encoding/json"
	"errors"

	"opsboard/internal/core/domain/model/inventory"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker defines the interface for collecting change events.
type changeTracker interface {
	TrackChange(event ports.ChangeEvent)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker changeTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory item to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Item) error {
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

// Update saves an existing inventory item to the database. Every column is
// written, so a cleared threshold or price actually clears.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
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

// Get retrieves an inventory item by ID.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormInventoryRepository) trackChange(action string, dto ItemDTO) {
	payload, err := json.Marshal(dto)
	if err != nil {
		payload = nil
	}

	r.tracker.TrackChange(ports.ChangeEvent{
		Collection: ports.InventoryCollection,
		Action:     action,
		RecordID:   dto.ID.String(),
		Payload:    payload,
	})
}
