package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrDeleteCarCommandIsNotConstructed = errors.New(
	"DeleteCarCommand must be created via NewDeleteCarCommand constructor",
)

// DeleteCarCommand represents a request to retire a car from the fleet.
// Deletion is logical: the car moves to the Deleted status and becomes
// immutable, but its record and order history remain.
type DeleteCarCommand struct { //nolint:recvcheck //using for validation
	carID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCarCommand creates a command to retire a car.
func NewDeleteCarCommand(carID kernel.UUID) (DeleteCarCommand, error) {
	if err := carID.Validate(); err != nil {
		return DeleteCarCommand{}, err
	}

	return DeleteCarCommand{
		carID: carID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCarCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCarCommandIsNotConstructed)
}

// CarID returns the identifier of the car being retired.
func (c DeleteCarCommand) CarID() kernel.UUID { return c.carID }
