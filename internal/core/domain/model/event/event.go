package event

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
)

var (
	// ErrEventIsNotConstructed is returned when an Event instance was not created
	// through NewEvent or RestoreEvent.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent")

	// ErrTitleIsRequired is returned when an event is created without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")

	// ErrClientIsRequired is returned when an event is created without a client.
	ErrClientIsRequired = errs.NewValueIsRequiredError("client")

	// ErrVenueIsRequired is returned when an event is created without a venue.
	ErrVenueIsRequired = errs.NewValueIsRequiredError("venue")

	// ErrScheduleIsInvalid is returned when the event ends before it starts.
	ErrScheduleIsInvalid = errs.NewValueIsInvalidError("endDate must not be before startDate")
)

// Contact holds the point-of-contact details for an event.
// Phone is optional; name and email are required.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Event is the aggregate root for a booked client event. Inventory shipments
// may link to an event by ID, and event status changes feed the notification
// policy.
type Event struct {
	id          kernel.UUID
	title       string
	client      string
	venue       string
	startDate   time.Time
	endDate     time.Time
	contact     Contact
	description string
	status      Status

	isConstructed bool
}

// NewEvent creates a new Event in Pending status.
// Title, client, venue, and a non-inverted schedule are required; the contact
// must carry a name and email.
func NewEvent(
	id kernel.UUID,
	title, client, venue string,
	startDate, endDate time.Time,
	contact Contact,
) (*Event, error) {
	e := &Event{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setTitle(title),
		e.setClient(client),
		e.setVenue(venue),
		e.setSchedule(startDate, endDate),
		e.setContact(contact),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEvent reconstructs an Event from persistence, re-validating invariants.
func RestoreEvent(
	id kernel.UUID,
	title, client, venue string,
	startDate, endDate time.Time,
	contact Contact,
	description string,
	status Status,
) (*Event, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	e := &Event{
		description:   description,
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setTitle(title),
		e.setClient(client),
		e.setVenue(venue),
		e.setSchedule(startDate, endDate),
		e.setContact(contact),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// Title returns the event title.
func (e *Event) Title() string {
	return e.title
}

// Client returns the client name.
func (e *Event) Client() string {
	return e.client
}

// Venue returns the venue.
func (e *Event) Venue() string {
	return e.venue
}

// StartDate returns the scheduled start.
func (e *Event) StartDate() time.Time {
	return e.startDate
}

// EndDate returns the scheduled end.
func (e *Event) EndDate() time.Time {
	return e.endDate
}

// ContactDetails returns the point of contact.
func (e *Event) ContactDetails() Contact {
	return e.contact
}

// Description returns the free-text description.
func (e *Event) Description() string {
	return e.description
}

// Status returns the current status.
func (e *Event) Status() Status {
	return e.status
}

// SetDescription records the free-text description.
func (e *Event) SetDescription(description string) {
	e.description = description
}

// UpdateDetails replaces the editable fields of the event in one validated step.
func (e *Event) UpdateDetails(title, client, venue string, startDate, endDate time.Time, contact Contact) error {
	return errors.Join(
		e.setTitle(title),
		e.setClient(client),
		e.setVenue(venue),
		e.setSchedule(startDate, endDate),
		e.setContact(contact),
	)
}

// ChangeStatus moves the event to the target status. Events have no
// transition table; any valid status is reachable from any other.
func (e *Event) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	e.status = target
	return nil
}

// IsCancelled reports whether the event is cancelled.
func (e *Event) IsCancelled() bool {
	return e.status == Cancelled
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	e.title = title
	return nil
}

func (e *Event) setClient(client string) error {
	if client == "" {
		return ErrClientIsRequired
	}
	e.client = client
	return nil
}

func (e *Event) setVenue(venue string) error {
	if venue == "" {
		return ErrVenueIsRequired
	}
	e.venue = venue
	return nil
}

func (e *Event) setSchedule(startDate, endDate time.Time) error {
	if startDate.IsZero() || endDate.IsZero() {
		return errs.NewValueIsRequiredError("startDate and endDate")
	}
	if endDate.Before(startDate) {
		return ErrScheduleIsInvalid
	}
	e.startDate = startDate
	e.endDate = endDate
	return nil
}

func (e *Event) setContact(contact Contact) error {
	if contact.Name == "" {
		return errs.NewValueIsRequiredError("contactName")
	}
	if contact.Email == "" {
		return errs.NewValueIsRequiredError("contactEmail")
	}
	e.contact = contact
	return nil
}
