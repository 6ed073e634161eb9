package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery retrieves Approved orders whose rental period ended
// before the given checkpoint and that have not been returned.
type GetOverdueOrdersQuery struct {
	checkpoint time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates a query for overdue orders.
func NewGetOverdueOrdersQuery(checkpoint time.Time) (GetOverdueOrdersQuery, error) {
	if checkpoint.IsZero() {
		return GetOverdueOrdersQuery{}, errs.NewValueIsRequiredError("checkpoint")
	}

	return GetOverdueOrdersQuery{
		checkpoint: checkpoint,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// Checkpoint returns the point in time orders are measured against.
func (q GetOverdueOrdersQuery) Checkpoint() time.Time {
	return q.checkpoint
}

// GetOverdueOrdersQueryResponse names one overdue rental: which car is out,
// who has it, and since when.
type GetOverdueOrdersQueryResponse struct {
	OrderID       kernel.UUID
	EndDateTime   time.Time
	CustomerName  string
	CustomerPhone string
	CarPlate      string
}
