package event

import (
	"fmt"

	"opsboard/internal/pkg/errs"
)

// Status represents the lifecycle state of an event. Unlike the shipment
// workflow there is no transition table: operators move events freely between
// valid statuses, and only the move into Cancelled has a side effect (a
// warning notification).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status for a newly booked event.
	Pending

	// Active indicates the event is underway or confirmed.
	Active

	// Completed indicates the event has finished.
	Completed

	// Cancelled indicates the event was called off.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Active:    "active",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Active:    "active",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a wire representation into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid event status", s),
	)
}

// Validate checks if the Status value is a member of the valid set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid event status", s),
		)
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
