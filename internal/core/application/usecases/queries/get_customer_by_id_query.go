package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrGetCustomerByIDQueryIsNotConstructed = errors.New(
	"GetCustomerByIDQuery must be created via NewGetCustomerByIDQuery constructor",
)

// GetCustomerByIDQuery retrieves a single customer.
type GetCustomerByIDQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerByIDQuery creates a query for one customer.
func NewGetCustomerByIDQuery(customerID kernel.UUID) (GetCustomerByIDQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerByIDQuery{}, err
	}

	return GetCustomerByIDQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByIDQueryIsNotConstructed)
}

// CustomerID returns the identifier of the requested customer.
func (q GetCustomerByIDQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerByIDQueryResponse is the customer read model.
type GetCustomerByIDQueryResponse struct {
	CustomerSummary
	DateOfBirth time.Time
	Deleted     bool
}
