// Package activity implements the dashboard activity feed entry. Activities
// are a best-effort audit trail: recording one never blocks the operation
// that produced it.
package activity

import (
	"errors"
	"fmt"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
)

var (
	// ErrActivityIsNotConstructed is returned when an Activity was not created
	// through NewActivity or RestoreActivity.
	ErrActivityIsNotConstructed = errors.New("Activity must be created via NewActivity or RestoreActivity")

	// ErrDescriptionIsRequired is returned when an activity has no description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
)

// Type classifies the area of the dashboard an activity belongs to.
type Type int

const (
	TypeUnknown Type = iota
	TypeEvent
	TypeDelivery
	TypeInventory
	TypeUser
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:   "unknown",
		TypeEvent:     "event",
		TypeDelivery:  "delivery",
		TypeInventory: "inventory",
		TypeUser:      "user",
	}
}

// Validate checks if the Type is a member of the valid set.
func (t Type) Validate() error {
	if t <= TypeUnknown || t > TypeUser {
		return errs.NewValueIsInvalidErrorWithCause(
			"type",
			fmt.Errorf("%d is not a valid activity type", t),
		)
	}
	return nil
}

// String returns the wire name of the type. Implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Activity is one feed entry describing something that happened on the board.
type Activity struct {
	id           kernel.UUID
	description  string
	activityType Type
	createdAt    time.Time

	isConstructed bool
}

// NewActivity creates a feed entry stamped with the given creation time.
func NewActivity(id kernel.UUID, description string, activityType Type, createdAt time.Time) (*Activity, error) {
	a := &Activity{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setDescription(description),
		a.setType(activityType),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreActivity reconstructs an Activity from persistence.
func RestoreActivity(id kernel.UUID, description string, activityType Type, createdAt time.Time) (*Activity, error) {
	return NewActivity(id, description, activityType, createdAt)
}

// Validate ensures the Activity was properly constructed.
func (a *Activity) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActivityIsNotConstructed
	}
	return nil
}

// ID returns the activity's unique identifier.
func (a *Activity) ID() kernel.UUID {
	return a.id
}

// Description returns the feed text.
func (a *Activity) Description() string {
	return a.description
}

// ActivityType returns the feed classification.
func (a *Activity) ActivityType() Type {
	return a.activityType
}

// CreatedAt returns the creation timestamp.
func (a *Activity) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Activity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Activity) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	a.description = description
	return nil
}

func (a *Activity) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	a.activityType = t
	return nil
}
