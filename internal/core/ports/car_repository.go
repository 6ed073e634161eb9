// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, unit-of-work transaction boundaries,
// the postal-code resolver, and the integration event publisher.
package ports

import (
	"context"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
)

// CarRepository defines the persistence contract for car aggregates,
// including their accessory items.
type CarRepository interface {
	// Add persists a new car aggregate to storage.
	Add(ctx context.Context, aggregate *car.Car) error

	// Update persists changes to an existing car aggregate. The accessory
	// item set is replaced as a whole.
	Update(ctx context.Context, aggregate *car.Car) error

	// Get retrieves a car aggregate by its unique identifier, regardless of
	// its status. Callers check IsOrderable themselves.
	Get(ctx context.Context, id kernel.UUID) (*car.Car, error)
}
