package order

import (
	"fmt"

	"rental/internal/pkg/errs"
)

// Status represents the lifecycle state of a rental order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Open ──┬──> Approved ──> Closed
//	       │
//	       └──> Cancelled
//
// Closed and Cancelled are terminal states with no further transitions.
// Status is a value object that validates state transitions and provides
// the literal tokens used for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when an order is first created.
	// Field updates and all status transitions start from here.
	Open

	// Approved indicates the order has been approved for rental.
	// Requires start date, end date, and cep to be set.
	Approved

	// Closed indicates the rental has been returned and settled.
	// This is a terminal state.
	Closed

	// Cancelled indicates the order was cancelled before approval.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Approved:  "Approved",
		Closed:    "Closed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "Open",
		Approved:  "Approved",
		Closed:    "Closed",
		Cancelled: "Cancelled",
	}
}

// getTransitions returns the full transition table of the order lifecycle.
// A status absent from the table is terminal.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Open:     {Approved, Cancelled},
		Approved: {Closed},
	}
}

// ParseStatus converts a literal status token ("Open", "Approved", "Closed",
// "Cancelled") into its Status value.
// Returns a ValueIsInvalidError for any other input, which callers surface
// as an invalid-status rejection.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Open, Approved, Closed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the literal token of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leads out of the status.
func (s Status) IsTerminal() bool {
	if s.Validate() != nil {
		return false
	}
	return len(getTransitions()[s]) == 0
}

// CanTransitionTo reports whether the transition table allows moving
// from the current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to target.
//
// Returns:
//   - (target, nil) when the transition table allows the move
//   - (0, error) with a PreconditionFailedError otherwise
//
// This method is the single enforcement point for transition legality;
// Order mutation methods build on it.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"status",
			fmt.Errorf("cannot transition from %s to %s", s, target),
		)
	}

	return target, nil
}
