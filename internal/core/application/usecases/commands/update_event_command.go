package commands

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/event"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

var ErrUpdateEventCommandIsNotConstructed = errors.New(
	"UpdateEventCommand must be created via NewUpdateEventCommand constructor",
)

// UpdateEventCommand represents a request to replace an event's editable
// fields and, optionally, its status. The full field set travels with the
// command; partial updates are the caller's merge problem.
type UpdateEventCommand struct { //nolint:recvcheck //using for validation
	eventID     kernel.UUID
	title       string
	client      string
	venue       string
	startDate   time.Time
	endDate     time.Time
	contact     event.Contact
	description string
	status      event.Status

	guard guard.ConstructorGuard
}

// NewUpdateEventCommand creates a command to update an event.
// Validates that the ID is valid, title, client, and venue are non-empty, and
// the status is a member of the valid set.
func NewUpdateEventCommand(
	eventID kernel.UUID,
	title, client, venue string,
	startDate, endDate time.Time,
	contact event.Contact,
	description string,
	status event.Status,
) (UpdateEventCommand, error) {
	cmd := UpdateEventCommand{
		startDate:   startDate,
		endDate:     endDate,
		contact:     contact,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEventID(eventID),
		cmd.setTitle(title),
		cmd.setClient(client),
		cmd.setVenue(venue),
		cmd.setStatus(status),
	); err != nil {
		return UpdateEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateEventCommandIsNotConstructed if validation fails.
func (c UpdateEventCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEventCommandIsNotConstructed)
}

// EventID returns the unique identifier for the event.
func (c UpdateEventCommand) EventID() kernel.UUID {
	return c.eventID
}

// Title returns the event title.
func (c UpdateEventCommand) Title() string {
	return c.title
}

// Client returns the client name.
func (c UpdateEventCommand) Client() string {
	return c.client
}

// Venue returns the venue.
func (c UpdateEventCommand) Venue() string {
	return c.venue
}

// StartDate returns the scheduled start.
func (c UpdateEventCommand) StartDate() time.Time {
	return c.startDate
}

// EndDate returns the scheduled end.
func (c UpdateEventCommand) EndDate() time.Time {
	return c.endDate
}

// ContactDetails returns the point of contact.
func (c UpdateEventCommand) ContactDetails() event.Contact {
	return c.contact
}

// Description returns the free-text description.
func (c UpdateEventCommand) Description() string {
	return c.description
}

// Status returns the requested status.
func (c UpdateEventCommand) Status() event.Status {
	return c.status
}

func (c *UpdateEventCommand) setEventID(eventID kernel.UUID) error {
	if err := eventID.Validate(); err != nil {
		return err
	}

	c.eventID = eventID
	return nil
}

func (c *UpdateEventCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *UpdateEventCommand) setClient(client string) error {
	if client == "" {
		return ErrClientIsRequired
	}

	c.client = client
	return nil
}

func (c *UpdateEventCommand) setVenue(venue string) error {
	if venue == "" {
		return ErrVenueIsRequired
	}

	c.venue = venue
	return nil
}

func (c *UpdateEventCommand) setStatus(status event.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
