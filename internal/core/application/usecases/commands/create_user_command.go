package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

const minPasswordLength = 6

// CreateUserCommand represents a request to register a back-office user
// account. The password travels in plain text only as far as the handler,
// which stores a bcrypt hash.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user.
// The password must be at least six characters long.
func NewCreateUserCommand(userID kernel.UUID, name, email, password string) (CreateUserCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		validatePassword(password),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		userID:   userID,
		name:     name,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new user.
func (c CreateUserCommand) UserID() kernel.UUID { return c.userID }

// Name returns the user's display name.
func (c CreateUserCommand) Name() string { return c.name }

// Email returns the user's login email.
func (c CreateUserCommand) Email() string { return c.email }

// Password returns the plain-text password to be hashed.
func (c CreateUserCommand) Password() string { return c.password }

func validatePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, nil)
	}

	return nil
}
