package car

import "rental/internal/pkg/errs"

// Status is the lifecycle state of a car in the fleet.
type Status int

const (
	// StatusUnknown is the zero value and never valid for a constructed car.
	StatusUnknown Status = iota
	// StatusActive means the car is available for new orders.
	StatusActive
	// StatusInactive means the car is temporarily withdrawn (maintenance etc.)
	// and cannot be ordered, but can be reactivated.
	StatusInactive
	// StatusDeleted means the car was logically removed. Deleted cars are
	// immutable and never orderable.
	StatusDeleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusActive:   "Active",
		StatusInactive: "Inactive",
		StatusDeleted:  "Deleted",
	}
}

// ParseStatus converts a persisted or user-supplied token into a Status.
func ParseStatus(value string) (Status, error) {
	for status, token := range getStatusStrings() {
		if status != StatusUnknown && token == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// Validate reports whether the status is one of the known lifecycle values.
func (s Status) Validate() error {
	if s == StatusActive || s == StatusInactive || s == StatusDeleted {
		return nil
	}
	return errs.NewValueIsInvalidError("status")
}

// String returns the canonical token used in storage and transport.
func (s Status) String() string {
	if token, ok := getStatusStrings()[s]; ok {
		return token
	}
	return "Unknown"
}
