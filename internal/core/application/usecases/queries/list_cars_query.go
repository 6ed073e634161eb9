package queries

import (
	"errors"

	"rental/internal/core/domain/model/car"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrListCarsQueryIsNotConstructed = errors.New(
	"ListCarsQuery must be created via NewListCarsQuery constructor",
)

func carSortColumns() map[string]string {
	return map[string]string{
		"plate":      "plate",
		"brand":      "brand",
		"model":      "model",
		"year":       "year",
		"dailyPrice": "daily_price",
	}
}

// ListCarsQuery retrieves a page of cars. Deleted cars are excluded unless the
// status filter names them explicitly. Brand matching is a case-insensitive
// prefix match.
type ListCarsQuery struct {
	status     *string
	brand      *string
	sortColumn string
	pagination Pagination

	guard guard.ConstructorGuard
}

// NewListCarsQuery creates a query for a page of cars.
func NewListCarsQuery(
	status, brand *string,
	sortBy string,
	pagination Pagination,
) (ListCarsQuery, error) {
	query := ListCarsQuery{
		brand:      brand,
		pagination: pagination,
		guard:      guard.NewConstructorGuard(),
	}

	if status != nil {
		if _, err := car.ParseStatus(*status); err != nil {
			return ListCarsQuery{}, err
		}
		query.status = status
	}

	if sortBy == "" {
		query.sortColumn = carSortColumns()["plate"]
	} else {
		column, ok := carSortColumns()[sortBy]
		if !ok {
			return ListCarsQuery{}, errs.NewValueIsInvalidError("sortBy")
		}
		query.sortColumn = column
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCarsQuery) Validate() error {
	return q.guard.Validate(ErrListCarsQueryIsNotConstructed)
}

// Status returns the status filter, or nil.
func (q ListCarsQuery) Status() *string { return q.status }

// Brand returns the brand filter, or nil.
func (q ListCarsQuery) Brand() *string { return q.brand }

// SortColumn returns the whitelisted column to order by.
func (q ListCarsQuery) SortColumn() string { return q.sortColumn }

// Pagination returns the page window.
func (q ListCarsQuery) Pagination() Pagination { return q.pagination }

// ListCarsQueryResponse is a page of cars with paging totals.
type ListCarsQueryResponse struct {
	Cars        []GetCarByIDQueryResponse
	Total       int64
	Pages       int
	CurrentPage int
}
