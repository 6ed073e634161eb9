package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
)

// GetOverdueOrdersQueryHandler reads the Approved orders past their end date,
// joined with customer and car details for the overdue report.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue-order queries.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

type overdueOrderRow struct {
	ID            uuid.UUID
	EndDateTime   time.Time
	CustomerName  string
	CustomerPhone string
	CarPlate      string
}

// Handle executes the query. Results are sorted with the longest overdue
// first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]overdueOrderRow, 0)
	err := h.db.WithContext(ctx).
		Table("orders").
		Select(`orders.id, orders.end_date_time,
			customers.name AS customer_name, customers.phone AS customer_phone,
			cars.plate AS car_plate`).
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Joins("JOIN cars ON cars.id = orders.car_id").
		Where("orders.status = ?", order.Approved.String()).
		Where("orders.end_date_time < ?", query.Checkpoint()).
		Order("orders.end_date_time").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueOrdersQueryResponse, 0, len(rows))
	for _, row := range rows {
		orderID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		overdue = append(overdue, GetOverdueOrdersQueryResponse{
			OrderID:       orderID,
			EndDateTime:   row.EndDateTime,
			CustomerName:  row.CustomerName,
			CustomerPhone: row.CustomerPhone,
			CarPlate:      row.CarPlate,
		})
	}

	return overdue, nil
}
