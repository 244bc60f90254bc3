package queries

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetEventsQueryHandler retrieves event information from the database.
type GetEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetEventsQueryHandler creates a handler for event retrieval queries.
func NewGetEventsQueryHandler(db *gorm.DB) GetEventsQueryHandler {
	return GetEventsQueryHandler{db: db}
}

// Handle executes the query to retrieve all events, ordered by start date.
func (h GetEventsQueryHandler) Handle(
	ctx context.Context,
	query GetEventsQuery,
) ([]GetEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			client,
			venue,
			start_date,
			end_date,
			contact_name,
			contact_email,
			contact_phone,
			description,
			status
		FROM events
		ORDER BY start_date
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetEventsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Title,
			&response.Client,
			&response.Venue,
			&response.StartDate,
			&response.EndDate,
			&response.ContactName,
			&response.ContactEmail,
			&response.ContactPhone,
			&response.Description,
			&response.Status,
		)
		if err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = eventID
		events = append(events, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
