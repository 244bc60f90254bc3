package queries

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

var ErrGetEventsQueryIsNotConstructed = errors.New(
	"GetEventsQuery must be created via NewGetEventsQuery constructor",
)

// GetEventsQuery retrieves every event, ordered by start date.
type GetEventsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEventsQuery creates a query to retrieve all events.
func NewGetEventsQuery() GetEventsQuery {
	return GetEventsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetEventsQueryIsNotConstructed if validation fails.
func (q GetEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetEventsQueryIsNotConstructed)
}

// GetEventsQueryResponse represents event information in the read model.
type GetEventsQueryResponse struct {
	ID           kernel.UUID
	Title        string
	Client       string
	Venue        string
	StartDate    time.Time
	EndDate      time.Time
	ContactName  string
	ContactEmail string
	ContactPhone string
	Description  string
	Status       string
}
