package eventrepo

import (
	"context"
	"encoding/json"
	"errors"

	"opsboard/internal/core/domain/model/event"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEventRepository implements EventRepository using GORM.
type GormEventRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker defines the interface for collecting change events.
type changeTracker interface {
	TrackChange(event ports.ChangeEvent)
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB, tracker changeTracker) *GormEventRepository {
	return &GormEventRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new event to the database.
func (r *GormEventRepository) Add(ctx context.Context, aggregate *event.Event) error {
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

// Update saves an existing event to the database.
func (r *GormEventRepository) Update(ctx context.Context, aggregate *event.Event) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&EventDTO{}).
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

// Get retrieves an event by ID.
func (r *GormEventRepository) Get(ctx context.Context, id kernel.UUID) (*event.Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EventDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("event", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormEventRepository) trackChange(action string, dto EventDTO) {
	payload, err := json.Marshal(dto)
	if err != nil {
		payload = nil
	}

	r.tracker.TrackChange(ports.ChangeEvent{
		Collection: ports.EventsCollection,
		Action:     action,
		RecordID:   dto.ID.String(),
		Payload:    payload,
	})
}
