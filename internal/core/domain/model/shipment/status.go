package shipment

import (
	"fmt"
	"strings"

	"opsboard/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It is a closed set: every persisted shipment carries exactly one of the six
// valid statuses below, and transitions between them are governed by the
// transition table in transitions.go.
//
// Normal progression:
//
//	Processing ──> PickedUp ──> InTransit ──> OutForDelivery ──> Delivered
//
// Any status (including Delivered) can additionally move to Delayed through
// the wildcard rule. Delivered has no other outgoing edge, which makes it
// terminal in practice but not enforced as such; see Status.IsTerminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status when a shipment is first created.
	Processing

	// PickedUp indicates the carrier has collected the shipment.
	PickedUp

	// InTransit indicates the shipment is moving between facilities.
	InTransit

	// OutForDelivery indicates the shipment is on the final delivery leg.
	OutForDelivery

	// Delivered indicates the shipment reached its destination.
	// No rule leads out of Delivered except the wildcard "mark delayed" rule.
	Delivered

	// Delayed indicates the shipment is held up; reachable from any status.
	Delayed
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Processing:     "processing",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Delayed:        "delayed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Processing:     "processing",
		PickedUp:       "picked_up",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Delayed:        "delayed",
	}
}

// StatusFromString parses a wire representation ("processing", "picked_up", ...)
// into a Status. Returns an error for anything outside the closed set, keeping
// the status invariant intact for values arriving from HTTP or persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks if the Status value is a member of the closed set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid shipment status", s),
		)
	}
	return nil
}

// String returns the wire name of the status, e.g. "out_for_delivery".
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// HistoryCode returns the upper-cased form used by the history log grammar,
// e.g. "OUT_FOR_DELIVERY".
func (s Status) HistoryCode() string {
	return strings.ToUpper(s.String())
}

// IsTerminal reports whether the status has no outgoing transition other than
// the wildcard "mark delayed" rule. Only Delivered qualifies. Delivered is not
// a hard terminal state: the wildcard rule still offers "Mark as Delayed"
// (e.g. "delivered then found lost"), so transition lookups consult the table
// alone and this predicate exists for callers that need to distinguish the
// end of the normal progression.
func (s Status) IsTerminal() bool {
	return s == Delivered
}
