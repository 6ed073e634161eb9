package commands

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a full update of a customer's profile.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	name        string
	dateOfBirth time.Time
	cpf         string
	email       string
	phone       string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	name string,
	dateOfBirth time.Time,
	cpf, email, phone string,
) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID:  customerID,
		name:        name,
		dateOfBirth: dateOfBirth,
		cpf:         cpf,
		email:       email,
		phone:       phone,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer being updated.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// Name returns the customer's full name.
func (c UpdateCustomerCommand) Name() string { return c.name }

// DateOfBirth returns the customer's date of birth.
func (c UpdateCustomerCommand) DateOfBirth() time.Time { return c.dateOfBirth }

// CPF returns the customer's tax identifier.
func (c UpdateCustomerCommand) CPF() string { return c.cpf }

// Email returns the customer's email address.
func (c UpdateCustomerCommand) Email() string { return c.email }

// Phone returns the customer's phone number.
func (c UpdateCustomerCommand) Phone() string { return c.phone }
