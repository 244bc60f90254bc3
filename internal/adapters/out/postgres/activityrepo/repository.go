package activityrepo

import (
	"context"
	"encoding/json"

	"opsboard/internal/core/domain/model/activity"
	"opsboard/internal/core/ports"

	"gorm.io/gorm"
)

// GormActivityRepository implements ActivityRepository using GORM.
// The feed is append-only; there is no update or delete path.
type GormActivityRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker defines the interface for collecting change events.
type changeTracker interface {
	TrackChange(event ports.ChangeEvent)
}

// NewGormActivityRepository creates a new GORM activity repository.
func NewGormActivityRepository(db *gorm.DB, tracker changeTracker) *GormActivityRepository {
	return &GormActivityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new activity feed entry to the database.
func (r *GormActivityRepository) Add(ctx context.Context, aggregate *activity.Activity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	payload, err := json.Marshal(dto)
	if err != nil {
		payload = nil
	}

	r.tracker.TrackChange(ports.ChangeEvent{
		Collection: ports.ActivitiesCollection,
		Action:     "INSERT",
		RecordID:   dto.ID.String(),
		Payload:    payload,
	})
	return nil
}
