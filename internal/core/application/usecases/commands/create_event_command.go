package commands

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/event"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

var (
	ErrCreateEventCommandIsNotConstructed = errors.New(
		"CreateEventCommand must be created via NewCreateEventCommand constructor",
	)
	ErrTitleIsRequired  = errors.New("title is required")
	ErrClientIsRequired = errors.New("client is required")
	ErrVenueIsRequired  = errors.New("venue is required")
)

// CreateEventCommand represents a request to create a new event booking.
// Schedule and contact validation is left to the aggregate, which owns those
// invariants.
//
// Example:
//
//	contact := event.Contact{Name: "Ada Chen", Email: "ada@client.example", Phone: "555-0100"}
//	cmd, err := NewCreateEventCommand(kernel.NewUUID(), "Summer Gala", "Chen & Co", "Harbor Hall",
//	    start, end, contact, "black tie")
//	if err != nil {
//	    return err
//	}
type CreateEventCommand struct { //nolint:recvcheck //using for validation
	eventID     kernel.UUID
	title       string
	client      string
	venue       string
	startDate   time.Time
	endDate     time.Time
	contact     event.Contact
	description string

	guard guard.ConstructorGuard
}

// NewCreateEventCommand creates a command to register a new event.
// Validates that the ID is valid and title, client, and venue are non-empty.
func NewCreateEventCommand(
	eventID kernel.UUID,
	title, client, venue string,
	startDate, endDate time.Time,
	contact event.Contact,
	description string,
) (CreateEventCommand, error) {
	cmd := CreateEventCommand{
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
	); err != nil {
		return CreateEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateEventCommandIsNotConstructed if validation fails.
func (c CreateEventCommand) Validate() error {
	return c.guard.Validate(ErrCreateEventCommandIsNotConstructed)
}

// EventID returns the unique identifier for the event.
func (c CreateEventCommand) EventID() kernel.UUID {
	return c.eventID
}

// Title returns the event title.
func (c CreateEventCommand) Title() string {
	return c.title
}

// Client returns the client name.
func (c CreateEventCommand) Client() string {
	return c.client
}

// Venue returns the venue.
func (c CreateEventCommand) Venue() string {
	return c.venue
}

// StartDate returns the scheduled start.
func (c CreateEventCommand) StartDate() time.Time {
	return c.startDate
}

// EndDate returns the scheduled end.
func (c CreateEventCommand) EndDate() time.Time {
	return c.endDate
}

// ContactDetails returns the point of contact.
func (c CreateEventCommand) ContactDetails() event.Contact {
	return c.contact
}

// Description returns the free-text description.
func (c CreateEventCommand) Description() string {
	return c.description
}

func (c *CreateEventCommand) setEventID(eventID kernel.UUID) error {
	if err := eventID.Validate(); err != nil {
		return err
	}

	c.eventID = eventID
	return nil
}

func (c *CreateEventCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateEventCommand) setClient(client string) error {
	if client == "" {
		return ErrClientIsRequired
	}

	c.client = client
	return nil
}

func (c *CreateEventCommand) setVenue(venue string) error {
	if venue == "" {
		return ErrVenueIsRequired
	}

	c.venue = venue
	return nil
}
