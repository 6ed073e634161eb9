package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Email uniqueness among non-deleted users is enforced by the storage layer
// and surfaces as a ConflictError.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier,
	// including soft-deleted ones.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a non-deleted user by login email.
	// Returns an ObjectNotFoundError when no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
