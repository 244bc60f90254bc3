// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	IsRead    bool      `gorm:"index" json:"is_read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		Title:     aggregate.Title(),
		Message:   aggregate.Message(),
		Kind:      aggregate.Kind().String(),
		IsRead:    aggregate.IsRead(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := notification.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, dto.Title, dto.Message, kind, dto.IsRead, dto.CreatedAt)
}
