package notification

import (
	"fmt"

	"opsboard/internal/pkg/errs"
)

// Kind classifies a notification for display: informational, warning, error,
// or success. The notification policy only ever emits info and warning; error
// and success exist for ad-hoc operator messages.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindInfo is a routine informational notification.
	KindInfo

	// KindWarning flags something needing operator attention.
	KindWarning

	// KindError flags a failure.
	KindError

	// KindSuccess confirms a completed action.
	KindSuccess
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "unknown",
		KindInfo:    "info",
		KindWarning: "warning",
		KindError:   "error",
		KindSuccess: "success",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindInfo:    "info",
		KindWarning: "warning",
		KindError:   "error",
		KindSuccess: "success",
	}
}

// KindFromString parses a wire representation into a Kind.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"kind",
		fmt.Errorf("%q is not a valid notification kind", s),
	)
}

// Validate checks if the Kind is a member of the valid set.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind",
			fmt.Errorf("%d is not a valid notification kind", k),
		)
	}
	return nil
}

// String returns the wire name of the kind. Implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
