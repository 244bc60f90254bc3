// Package eventrepo provides data transfer objects and mapping functions for
// event persistence.
package eventrepo

import (
	"time"

	"opsboard/internal/core/domain/model/event"
	"opsboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting event aggregates.
type EventDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `json:"title"`
	Client       string    `json:"client"`
	Venue        string    `json:"venue"`
	StartDate    time.Time `gorm:"index" json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Description  string    `json:"description"`
	Status       string    `gorm:"index" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the database table name for event entities.
func (EventDTO) TableName() string {
	return "events"
}

// fromDomain converts an event domain aggregate to its database representation.
func fromDomain(aggregate *event.Event) EventDTO {
	contact := aggregate.ContactDetails()

	return EventDTO{
		ID:           aggregate.ID().Bytes(),
		Title:        aggregate.Title(),
		Client:       aggregate.Client(),
		Venue:        aggregate.Venue(),
		StartDate:    aggregate.StartDate(),
		EndDate:      aggregate.EndDate(),
		ContactName:  contact.Name,
		ContactEmail: contact.Email,
		ContactPhone: contact.Phone,
		Description:  aggregate.Description(),
		Status:       aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to an event domain aggregate.
func toDomain(dto EventDTO) (*event.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := event.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return event.RestoreEvent(
		id,
		dto.Title, dto.Client, dto.Venue,
		dto.StartDate, dto.EndDate,
		event.Contact{
			Name:  dto.ContactName,
			Email: dto.ContactEmail,
			Phone: dto.ContactPhone,
		},
		dto.Description,
		status,
	)
}
