package kernel

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"opsboard/internal/pkg/errs"
)

// ErrTrackingNumberIsNotConstructed indicates that a TrackingNumber was not created
// through NewTrackingNumber or TrackingNumberFromString.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via NewTrackingNumber or TrackingNumberFromString",
)

// trackingNumberPrefix identifies shipments originating from this system.
const trackingNumberPrefix = "QCS"

// trackingNumberPattern matches the generated format: prefix, the last eight
// digits of a millisecond timestamp, and a three-digit random suffix.
var trackingNumberPattern = regexp.MustCompile(`^QCS\d{11}$`)

// TrackingNumber is a value object identifying a shipment to operators and
// customers. It is generated at shipment creation when not supplied.
//
// The generated format is "QCS" + the last 8 digits of a millisecond timestamp
// + a 3-digit zero-padded random suffix. Uniqueness is probabilistic, not
// guaranteed: two shipments created within the same millisecond can collide on
// the random suffix. This is a known weakness of the format, accepted because
// tracking numbers are operator-facing labels rather than primary keys.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber generates a fresh tracking number from the current time.
//
// Example:
//
//	tn := kernel.NewTrackingNumber()
//	fmt.Println(tn.String()) // e.g., "QCS56789012042"
func NewTrackingNumber() TrackingNumber {
	millis := time.Now().UnixMilli()
	timestamp := fmt.Sprintf("%d", millis)
	if len(timestamp) > 8 {
		timestamp = timestamp[len(timestamp)-8:]
	}
	suffix := fmt.Sprintf("%03d", rand.Intn(1000))
	return TrackingNumber{value: trackingNumberPrefix + timestamp + suffix}
}

// TrackingNumberFromString reconstructs a tracking number from its string form,
// typically when loading a shipment from persistence or parsing external input.
// Returns an error for empty input; the format itself is not re-validated so
// numbers issued by earlier format revisions remain loadable.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	return TrackingNumber{value: s}, nil
}

// String returns the tracking number text, e.g. "QCS56789012042".
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Matches reports whether the tracking number conforms to the generated format.
func (t TrackingNumber) Matches() bool {
	return trackingNumberPattern.MatchString(t.value)
}

// Validate checks that the TrackingNumber was properly constructed.
// Returns ErrTrackingNumberIsNotConstructed for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
