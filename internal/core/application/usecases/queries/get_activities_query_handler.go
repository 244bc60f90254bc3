package queries

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActivitiesQueryHandler retrieves activity feed entries from the database.
type GetActivitiesQueryHandler struct {
	db *gorm.DB
}

// NewGetActivitiesQueryHandler creates a handler for activity feed queries.
func NewGetActivitiesQueryHandler(db *gorm.DB) GetActivitiesQueryHandler {
	return GetActivitiesQueryHandler{db: db}
}

// Handle executes the query to retrieve the newest feed entries.
func (h GetActivitiesQueryHandler) Handle(
	ctx context.Context,
	query GetActivitiesQuery,
) ([]GetActivitiesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	activities := make([]GetActivitiesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			activity_type,
			created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActivitiesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Description,
			&response.ActivityType,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		activityID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = activityID
		activities = append(activities, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}
