// Package activityrepo provides data transfer objects and mapping functions
// for the append-only activity feed.
package activityrepo

import (
	"time"

	"opsboard/internal/core/domain/model/activity"

	"github.com/google/uuid"
)

// ActivityDTO represents the database structure for persisting feed entries.
type ActivityDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Description  string    `json:"description"`
	ActivityType string    `json:"activity_type"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the database table name for activity entries.
func (ActivityDTO) TableName() string {
	return "activities"
}

// fromDomain converts an activity entry to its database representation.
func fromDomain(aggregate *activity.Activity) ActivityDTO {
	return ActivityDTO{
		ID:           aggregate.ID().Bytes(),
		Description:  aggregate.Description(),
		ActivityType: aggregate.ActivityType().String(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}
