package commands

import (
	"errors"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand represents an authentication attempt with email and
// password credentials.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginUserCommand creates a command to authenticate a user.
func NewLoginUserCommand(email, password string) (LoginUserCommand, error) {
	if email == "" {
		return LoginUserCommand{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginUserCommand{}, errs.NewValueIsRequiredError("password")
	}

	return LoginUserCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

// Email returns the login email.
func (c LoginUserCommand) Email() string { return c.email }

// Password returns the plain-text password to verify.
func (c LoginUserCommand) Password() string { return c.password }
