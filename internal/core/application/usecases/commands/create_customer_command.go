package commands

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a customer.
// CPF and email formats are validated by the Customer aggregate; uniqueness
// among non-deleted customers is enforced by the repository.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	name        string
	dateOfBirth time.Time
	cpf         string
	email       string
	phone       string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	name string,
	dateOfBirth time.Time,
	cpf, email, phone string,
) (CreateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
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
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// Name returns the customer's full name.
func (c CreateCustomerCommand) Name() string { return c.name }

// DateOfBirth returns the customer's date of birth.
func (c CreateCustomerCommand) DateOfBirth() time.Time { return c.dateOfBirth }

// CPF returns the customer's tax identifier.
func (c CreateCustomerCommand) CPF() string { return c.cpf }

// Email returns the customer's email address.
func (c CreateCustomerCommand) Email() string { return c.email }

// Phone returns the customer's phone number.
func (c CreateCustomerCommand) Phone() string { return c.phone }
