package queries

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

const defaultActivitiesLimit = 50

var (
	ErrGetActivitiesQueryIsNotConstructed = errors.New(
		"GetActivitiesQuery must be created via NewGetActivitiesQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be greater than 0")
)

// GetActivitiesQuery retrieves the most recent activity feed entries.
//
// Example:
//
//	query, err := NewGetActivitiesQuery(20)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetActivitiesQueryHandler(db)
//	feed, err := handler.Handle(ctx, query)
type GetActivitiesQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetActivitiesQuery creates a query for the activity feed. A limit of 0
// selects the default feed size; negative limits are rejected.
func NewGetActivitiesQuery(limit int) (GetActivitiesQuery, error) {
	query := GetActivitiesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLimit(limit); err != nil {
		return GetActivitiesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActivitiesQueryIsNotConstructed if validation fails.
func (q GetActivitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetActivitiesQueryIsNotConstructed)
}

// Limit returns the maximum number of entries to fetch.
func (q GetActivitiesQuery) Limit() int {
	return q.limit
}

func (q *GetActivitiesQuery) setLimit(limit int) error {
	if limit < 0 {
		return ErrLimitIsInvalid
	}
	if limit == 0 {
		limit = defaultActivitiesLimit
	}

	q.limit = limit
	return nil
}

// GetActivitiesQueryResponse represents one activity feed entry in the read model.
type GetActivitiesQueryResponse struct {
	ID           kernel.UUID
	Description  string
	ActivityType string
	CreatedAt    time.Time
}
