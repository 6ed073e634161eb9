package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single rental order with its customer and car
// details.
type GetOrderByIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerSummary is the customer projection embedded in order read models.
type CustomerSummary struct {
	ID    kernel.UUID
	Name  string
	CPF   string
	Email string
	Phone string
}

// CarSummary is the car projection embedded in order read models.
type CarSummary struct {
	ID         kernel.UUID
	Plate      string
	Brand      string
	Model      string
	DailyPrice decimal.Decimal
	Items      []string
}

// GetOrderByIDQueryResponse is the full order read model.
type GetOrderByIDQueryResponse struct {
	ID               kernel.UUID
	Status           string
	CEP              *string
	City             *string
	Region           *string
	StartDateTime    *time.Time
	EndDateTime      *time.Time
	RentalFee        decimal.Decimal
	Fine             *decimal.Decimal
	TotalValue       decimal.Decimal
	CancellationDate *time.Time
	ClosingDate      *time.Time
	CreatedAt        time.Time
	Customer         CustomerSummary
	Car              CarSummary
}
