package queries

import (
	"errors"
	"strings"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

func customerSortColumns() map[string]string {
	return map[string]string{
		"name":  "name",
		"cpf":   "cpf",
		"email": "email",
	}
}

// ListCustomersQuery retrieves a page of non-deleted customers. Name matching
// is a case-insensitive substring match; cpf is an exact match on the
// normalized digits.
type ListCustomersQuery struct {
	name       *string
	cpf        *string
	sortColumn string
	pagination Pagination

	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a query for a page of customers.
func NewListCustomersQuery(
	name, cpf *string,
	sortBy string,
	pagination Pagination,
) (ListCustomersQuery, error) {
	query := ListCustomersQuery{
		name:       name,
		pagination: pagination,
		guard:      guard.NewConstructorGuard(),
	}

	if cpf != nil {
		normalized := strings.NewReplacer(".", "", "-", "", " ", "").Replace(*cpf)
		query.cpf = &normalized
	}

	if sortBy == "" {
		query.sortColumn = customerSortColumns()["name"]
	} else {
		column, ok := customerSortColumns()[sortBy]
		if !ok {
			return ListCustomersQuery{}, errs.NewValueIsInvalidError("sortBy")
		}
		query.sortColumn = column
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// Name returns the name filter, or nil.
func (q ListCustomersQuery) Name() *string { return q.name }

// CPF returns the normalized cpf filter, or nil.
func (q ListCustomersQuery) CPF() *string { return q.cpf }

// SortColumn returns the whitelisted column to order by.
func (q ListCustomersQuery) SortColumn() string { return q.sortColumn }

// Pagination returns the page window.
func (q ListCustomersQuery) Pagination() Pagination { return q.pagination }

// ListCustomersQueryResponse is a page of customers with paging totals.
type ListCustomersQueryResponse struct {
	Customers   []GetCustomerByIDQueryResponse
	Total       int64
	Pages       int
	CurrentPage int
}
