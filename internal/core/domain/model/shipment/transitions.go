package shipment

import (
	"fmt"

	"opsboard/internal/pkg/errs"
)

var (
	// ErrIllegalTransition is returned when a requested target status is not
	// reachable from the shipment's current status via the transition table.
	// Rejected before any write; safe to retry with a legal target.
	ErrIllegalTransition = errs.NewValueIsInvalidError("target status is not reachable from current status")

	// ErrNoteIsRequired is returned when a transition whose rule demands an
	// operator note is requested without one. The UI prompts for the note, so
	// this check is defense in depth rather than the primary gate.
	ErrNoteIsRequired = errs.NewValueIsRequiredError("note is required for this transition")
)

// transitionFrom is the tagged origin of a transition rule: either a single
// concrete status or any status. Matching is explicit rather than through a
// sentinel value, so a rule can never be confused with a status comparison.
type transitionFrom struct {
	any    bool
	status Status
}

// FromStatus builds a rule origin matching exactly one status.
func FromStatus(s Status) transitionFrom {
	return transitionFrom{status: s}
}

// FromAny builds a rule origin matching every status.
// A FromAny rule still never offers a transition back into the current status.
func FromAny() transitionFrom {
	return transitionFrom{any: true}
}

// matches reports whether the origin covers the given current status.
func (f transitionFrom) matches(current Status) bool {
	return f.any || f.status == current
}

// TransitionRule is one declarative edge in the shipment status state machine,
// carrying the UI label, note requirement, and confirmation prompt alongside
// the edge itself.
type TransitionRule struct {
	from               transitionFrom
	to                 Status
	label              string
	requiresNote       bool
	confirmationPrompt string
}

// To returns the status this rule transitions into.
func (r TransitionRule) To() Status {
	return r.to
}

// Label returns the human-readable action label, e.g. "Mark as Picked Up".
func (r TransitionRule) Label() string {
	return r.label
}

// RequiresNote reports whether the transition demands an operator note.
func (r TransitionRule) RequiresNote() bool {
	return r.requiresNote
}

// ConfirmationPrompt returns the confirmation text shown before applying the rule.
func (r TransitionRule) ConfirmationPrompt() string {
	return r.confirmationPrompt
}

// AppliesTo reports whether the rule is offered for the given current status.
// A rule never applies when its target equals the current status.
func (r TransitionRule) AppliesTo(current Status) bool {
	return r.from.matches(current) && r.to != current
}

// statusTransitions is the static transition table, in declaration order.
// Order is deterministic and stable so UI menus render consistently.
var statusTransitions = []TransitionRule{
	{
		from:               FromStatus(Processing),
		to:                 PickedUp,
		label:              "Mark as Picked Up",
		requiresNote:       true,
		confirmationPrompt: "Are you sure you want to mark this shipment as picked up?",
	},
	{
		from:               FromStatus(PickedUp),
		to:                 InTransit,
		label:              "Mark as In Transit",
		requiresNote:       true,
		confirmationPrompt: "Are you sure you want to mark this shipment as in transit?",
	},
	{
		from:               FromStatus(InTransit),
		to:                 OutForDelivery,
		label:              "Mark as Out for Delivery",
		requiresNote:       true,
		confirmationPrompt: "Are you sure you want to mark this shipment as out for delivery?",
	},
	{
		from:               FromStatus(OutForDelivery),
		to:                 Delivered,
		label:              "Mark as Delivered",
		requiresNote:       true,
		confirmationPrompt: "Are you sure you want to mark this shipment as delivered?",
	},
	{
		from:               FromAny(),
		to:                 Delayed,
		label:              "Mark as Delayed",
		requiresNote:       true,
		confirmationPrompt: "Are you sure you want to mark this shipment as delayed?",
	},
}

// AvailableTransitions returns every rule offered from the current status, in
// table declaration order. A rule is offered when its origin matches and its
// target differs from the current status. For Delivered this yields only the
// wildcard "Mark as Delayed" rule.
func AvailableTransitions(current Status) []TransitionRule {
	available := make([]TransitionRule, 0, len(statusTransitions))
	for _, rule := range statusTransitions {
		if rule.AppliesTo(current) {
			available = append(available, rule)
		}
	}
	return available
}

// FindTransition locates the rule moving the current status to the target.
// Returns ErrIllegalTransition (wrapped with the offending pair) when no rule
// in the table offers that edge.
func FindTransition(current, target Status) (TransitionRule, error) {
	for _, rule := range AvailableTransitions(current) {
		if rule.To() == target {
			return rule, nil
		}
	}
	return TransitionRule{}, fmt.Errorf("no rule from %s to %s: %w", current, target, ErrIllegalTransition)
}
