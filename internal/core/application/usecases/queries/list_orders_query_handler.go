package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rental/internal/core/domain/model/kernel"
)

// ListOrdersQueryHandler reads a filtered, paginated page of orders joined
// with their customers.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

type orderSummaryRow struct {
	ID            uuid.UUID
	Status        string
	StartDateTime *time.Time
	EndDateTime   *time.Time
	TotalValue    decimal.Decimal
	CreatedAt     time.Time

	CustomerID    uuid.UUID
	CustomerName  string
	CustomerCPF   string
	CustomerEmail string
	CustomerPhone string
}

// Handle executes the query, returning the requested page and the totals for
// the full filtered set.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	base := h.db.WithContext(ctx).
		Table("orders").
		Joins("JOIN customers ON customers.id = orders.customer_id")

	if query.Status() != nil {
		base = base.Where("orders.status = ?", *query.Status())
	}
	if query.CustomerCPF() != nil {
		base = base.Where("customers.cpf = ?", *query.CustomerCPF())
	}
	if query.CreatedFrom() != nil {
		base = base.Where("orders.created_at >= ?", *query.CreatedFrom())
	}
	if query.CreatedTo() != nil {
		base = base.Where("orders.created_at <= ?", *query.CreatedTo())
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows := make([]orderSummaryRow, 0)
	err := base.Session(&gorm.Session{}).
		Select(`orders.id, orders.status, orders.start_date_time, orders.end_date_time,
			orders.total_value, orders.created_at,
			customers.id AS customer_id, customers.name AS customer_name,
			customers.cpf AS customer_cpf, customers.email AS customer_email,
			customers.phone AS customer_phone`).
		Order(query.SortColumn()).
		Offset(query.Pagination().Offset()).
		Limit(query.Pagination().Size()).
		Find(&rows).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orders := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		orderID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		customerID, idErr := kernel.UUIDFromBytes(row.CustomerID[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}

		orders = append(orders, OrderSummary{
			ID:            orderID,
			Status:        row.Status,
			StartDateTime: row.StartDateTime,
			EndDateTime:   row.EndDateTime,
			TotalValue:    row.TotalValue,
			CreatedAt:     row.CreatedAt,
			Customer: CustomerSummary{
				ID:    customerID,
				Name:  row.CustomerName,
				CPF:   row.CustomerCPF,
				Email: row.CustomerEmail,
				Phone: row.CustomerPhone,
			},
		})
	}

	return ListOrdersQueryResponse{
		Orders:      orders,
		Total:       total,
		Pages:       query.Pagination().Pages(total),
		CurrentPage: query.Pagination().Page(),
	}, nil
}
