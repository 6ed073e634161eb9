package ports

import (
	"context"

	"rental/internal/core/domain/model/customer"
	"rental/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
// Uniqueness of cpf and email among non-deleted customers is enforced by the
// storage layer and surfaces as a ConflictError on Add and Update.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier,
	// including soft-deleted ones.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
