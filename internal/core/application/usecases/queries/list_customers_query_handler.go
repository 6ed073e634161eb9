package queries

import (
	"context"

	"gorm.io/gorm"

	"rental/internal/core/domain/model/kernel"
)

// ListCustomersQueryHandler reads a filtered, paginated page of non-deleted
// customers.
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomersQueryHandler creates a handler for customer list queries.
func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle executes the query, returning the requested page and the totals for
// the full filtered set.
func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) (ListCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCustomersQueryResponse{}, err
	}

	base := h.db.WithContext(ctx).
		Table("customers").
		Where("deleted = false")

	if query.Name() != nil {
		base = base.Where("name ILIKE ?", "%"+*query.Name()+"%")
	}
	if query.CPF() != nil {
		base = base.Where("cpf = ?", *query.CPF())
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ListCustomersQueryResponse{}, err
	}

	rows := make([]customerRow, 0)
	err := base.Session(&gorm.Session{}).
		Order(query.SortColumn()).
		Offset(query.Pagination().Offset()).
		Limit(query.Pagination().Size()).
		Find(&rows).Error
	if err != nil {
		return ListCustomersQueryResponse{}, err
	}

	customers := make([]GetCustomerByIDQueryResponse, 0, len(rows))
	for _, row := range rows {
		customerID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return ListCustomersQueryResponse{}, idErr
		}

		customers = append(customers, GetCustomerByIDQueryResponse{
			CustomerSummary: CustomerSummary{
				ID:    customerID,
				Name:  row.Name,
				CPF:   row.CPF,
				Email: row.Email,
				Phone: row.Phone,
			},
			DateOfBirth: row.DateOfBirth,
			Deleted:     row.Deleted,
		})
	}

	return ListCustomersQueryResponse{
		Customers:   customers,
		Total:       total,
		Pages:       query.Pagination().Pages(total),
		CurrentPage: query.Pagination().Page(),
	}, nil
}
