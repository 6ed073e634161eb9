package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Open-order lookups back the availability guard: at most one open order may
// exist per car and per customer, and the storage layer must enforce that
// with a uniqueness constraint so concurrent creations cannot race past the
// read-then-write check.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. A uniqueness violation
	// on the open-order constraints surfaces as a ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOpenByCarID retrieves the open order referencing the car, if any.
	// Returns an ObjectNotFoundError when no open order exists.
	GetOpenByCarID(ctx context.Context, carID kernel.UUID) (*order.Order, error)

	// GetOpenByCustomerID retrieves the open order referencing the customer, if any.
	// Returns an ObjectNotFoundError when no open order exists.
	GetOpenByCustomerID(ctx context.Context, customerID kernel.UUID) (*order.Order, error)
}
