package queries

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// orderSortColumns whitelists the sortable fields of the order list.
func orderSortColumns() map[string]string {
	return map[string]string{
		"createdAt":     "orders.created_at",
		"startDateTime": "orders.start_date_time",
		"endDateTime":   "orders.end_date_time",
		"totalValue":    "orders.total_value",
		"status":        "orders.status",
	}
}

// ListOrdersQuery retrieves a page of rental orders with their customer
// projections. All filters are optional: status token, customer cpf, and a
// creation-date range.
type ListOrdersQuery struct {
	status      *string
	customerCPF *string
	createdFrom *time.Time
	createdTo   *time.Time
	sortColumn  string
	pagination  Pagination

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of orders. An empty sortBy
// selects creation-date ordering; unknown sort fields and status tokens are
// rejected.
func NewListOrdersQuery(
	status, customerCPF *string,
	createdFrom, createdTo *time.Time,
	sortBy string,
	pagination Pagination,
) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		createdFrom: createdFrom,
		createdTo:   createdTo,
		pagination:  pagination,
		guard:       guard.NewConstructorGuard(),
	}

	if status != nil {
		if _, err := order.ParseStatus(*status); err != nil {
			return ListOrdersQuery{}, err
		}
		query.status = status
	}

	if customerCPF != nil {
		normalized := strings.NewReplacer(".", "", "-", "", " ", "").Replace(*customerCPF)
		query.customerCPF = &normalized
	}

	if sortBy == "" {
		query.sortColumn = orderSortColumns()["createdAt"]
	} else {
		column, ok := orderSortColumns()[sortBy]
		if !ok {
			return ListOrdersQuery{}, errs.NewValueIsInvalidError("sortBy")
		}
		query.sortColumn = column
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil.
func (q ListOrdersQuery) Status() *string { return q.status }

// CustomerCPF returns the normalized cpf filter, or nil.
func (q ListOrdersQuery) CustomerCPF() *string { return q.customerCPF }

// CreatedFrom returns the inclusive lower creation-date bound, or nil.
func (q ListOrdersQuery) CreatedFrom() *time.Time { return q.createdFrom }

// CreatedTo returns the inclusive upper creation-date bound, or nil.
func (q ListOrdersQuery) CreatedTo() *time.Time { return q.createdTo }

// SortColumn returns the whitelisted column to order by.
func (q ListOrdersQuery) SortColumn() string { return q.sortColumn }

// Pagination returns the page window.
func (q ListOrdersQuery) Pagination() Pagination { return q.pagination }

// OrderSummary is the order projection returned by the list query.
type OrderSummary struct {
	ID            kernel.UUID
	Status        string
	StartDateTime *time.Time
	EndDateTime   *time.Time
	TotalValue    decimal.Decimal
	CreatedAt     time.Time
	Customer      CustomerSummary
}

// ListOrdersQueryResponse is a page of orders with paging totals.
type ListOrdersQueryResponse struct {
	Orders      []OrderSummary
	Total       int64
	Pages       int
	CurrentPage int
}
