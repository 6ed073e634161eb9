package queries

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrGetCarByIDQueryIsNotConstructed = errors.New(
	"GetCarByIDQuery must be created via NewGetCarByIDQuery constructor",
)

// GetCarByIDQuery retrieves a single car with its accessory items.
type GetCarByIDQuery struct {
	carID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarByIDQuery creates a query for one car.
func NewGetCarByIDQuery(carID kernel.UUID) (GetCarByIDQuery, error) {
	if err := carID.Validate(); err != nil {
		return GetCarByIDQuery{}, err
	}

	return GetCarByIDQuery{
		carID: carID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCarByIDQueryIsNotConstructed)
}

// CarID returns the identifier of the requested car.
func (q GetCarByIDQuery) CarID() kernel.UUID {
	return q.carID
}

// GetCarByIDQueryResponse is the car read model, including its status and
// odometer details that the list projection omits.
type GetCarByIDQueryResponse struct {
	CarSummary
	Km     int
	Year   int
	Status string
}
