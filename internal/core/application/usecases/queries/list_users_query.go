package queries

import (
	"errors"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

func userSortColumns() map[string]string {
	return map[string]string{
		"name":  "name",
		"email": "email",
	}
}

// ListUsersQuery retrieves a page of non-deleted back-office users.
type ListUsersQuery struct {
	sortColumn string
	pagination Pagination

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a query for a page of users.
func NewListUsersQuery(sortBy string, pagination Pagination) (ListUsersQuery, error) {
	query := ListUsersQuery{
		pagination: pagination,
		guard:      guard.NewConstructorGuard(),
	}

	if sortBy == "" {
		query.sortColumn = userSortColumns()["name"]
	} else {
		column, ok := userSortColumns()[sortBy]
		if !ok {
			return ListUsersQuery{}, errs.NewValueIsInvalidError("sortBy")
		}
		query.sortColumn = column
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// SortColumn returns the whitelisted column to order by.
func (q ListUsersQuery) SortColumn() string { return q.sortColumn }

// Pagination returns the page window.
func (q ListUsersQuery) Pagination() Pagination { return q.pagination }

// ListUsersQueryResponse is a page of users with paging totals.
type ListUsersQueryResponse struct {
	Users       []GetUserByIDQueryResponse
	Total       int64
	Pages       int
	CurrentPage int
}
