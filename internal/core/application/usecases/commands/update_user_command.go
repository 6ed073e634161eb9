package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand represents an update of a user's profile. An empty
// password leaves the stored hash unchanged.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to update a user.
func NewUpdateUserCommand(userID kernel.UUID, name, email, password string) (UpdateUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpdateUserCommand{}, err
	}
	if password != "" {
		if err := validatePassword(password); err != nil {
			return UpdateUserCommand{}, err
		}
	}

	return UpdateUserCommand{
		userID:   userID,
		name:     name,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user being updated.
func (c UpdateUserCommand) UserID() kernel.UUID { return c.userID }

// Name returns the user's display name.
func (c UpdateUserCommand) Name() string { return c.name }

// Email returns the user's login email.
func (c UpdateUserCommand) Email() string { return c.email }

// Password returns the new plain-text password, or "" to keep the current one.
func (c UpdateUserCommand) Password() string { return c.password }
