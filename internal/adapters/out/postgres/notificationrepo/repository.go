package notificationrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/notification"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker defines the interface for collecting change events.
type changeTracker interface {
	TrackChange(event ports.ChangeEvent)
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB, tracker changeTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new notification to the database.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.trackChange("INSERT", dto.ID.String(), dto)
	return nil
}

// Update saves an existing notification to the database. The read flag is the
// only field that legitimately changes after creation.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
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

	r.trackChange("UPDATE", dto.ID.String(), dto)
	return nil
}

// Get retrieves a notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// MarkAllRead flags every unread notification as read in one statement.
// A single change event covers the whole sweep; subscribers refetch the inbox
// rather than patching rows one by one.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("is_read = ?", false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		r.tracker.TrackChange(ports.ChangeEvent{
			Collection: ports.NotificationsCollection,
			Action:     "UPDATE",
		})
	}

	return result.RowsAffected, nil
}

// Delete removes a notification permanently.
func (r *GormNotificationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&NotificationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}

	r.tracker.TrackChange(ports.ChangeEvent{
		Collection: ports.NotificationsCollection,
		Action:     "DELETE",
		RecordID:   id.String(),
	})
	return nil
}

// DeleteReadOlderThan removes read notifications created before the cutoff.
// Unread notifications are never touched. Returns the number removed.
func (r *GormNotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&NotificationDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		r.tracker.TrackChange(ports.ChangeEvent{
			Collection: ports.NotificationsCollection,
			Action:     "DELETE",
		})
	}

	return result.RowsAffected, nil
}

func (r *GormNotificationRepository) trackChange(action, recordID string, dto NotificationDTO) {
	payload, err := json.Marshal(dto)
	if err != nil {
		payload = nil
	}

	r.tracker.TrackChange(ports.ChangeEvent{
		Collection: ports.NotificationsCollection,
		Action:     action,
		RecordID:   recordID,
		Payload:    payload,
	})
}
