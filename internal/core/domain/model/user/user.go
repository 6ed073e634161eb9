package user

import (
	"errors"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
)

// User is a back-office account that can authenticate and manage the rental
// data. The aggregate holds only the password hash; hashing and verification
// live in the application layer.
type User struct {
	id            kernel.UUID
	name          string
	email         string
	passwordHash  string
	deleted       bool
	isConstructed bool
}

// NewUser creates a user with an already hashed password.
func NewUser(id kernel.UUID, name, email, passwordHash string) (*User, error) {
	user := &User{isConstructed: true}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistence, including the
// soft-delete flag.
func RestoreUser(id kernel.UUID, name, email, passwordHash string, deleted bool) (*User, error) {
	user, err := NewUser(id, name, email, passwordHash)
	if err != nil {
		return nil, err
	}

	user.deleted = deleted
	return user, nil
}

// Validate ensures the User was properly constructed through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the lowercased login email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// IsDeleted reports whether the user was soft-deleted.
func (u *User) IsDeleted() bool { return u.deleted }

// Update replaces the user's name and email. Deleted users are immutable.
func (u *User) Update(name, email string) error {
	if u.deleted {
		return errs.NewPreconditionFailedError("deleted user cannot be modified")
	}

	return errors.Join(u.setName(name), u.setEmail(email))
}

// ChangePasswordHash replaces the stored hash with a freshly computed one.
func (u *User) ChangePasswordHash(passwordHash string) error {
	if u.deleted {
		return errs.NewPreconditionFailedError("deleted user cannot be modified")
	}

	return u.setPasswordHash(passwordHash)
}

// Delete soft-deletes the user. A repeated delete is rejected.
func (u *User) Delete() error {
	if u.deleted {
		return errs.NewPreconditionFailedError("user is already deleted")
	}

	u.deleted = true
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}

	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}
