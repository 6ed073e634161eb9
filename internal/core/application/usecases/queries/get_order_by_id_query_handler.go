package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// GetOrderByIDQueryHandler reads one order joined with its customer and car,
// plus the car's accessory items.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order queries.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

type orderDetailRow struct {
	ID               uuid.UUID
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

	CustomerID    uuid.UUID
	CustomerName  string
	CustomerCPF   string
	CustomerEmail string
	CustomerPhone string

	CarID         uuid.UUID
	CarPlate      string
	CarBrand      string
	CarModel      string
	CarDailyPrice decimal.Decimal
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// exists with the given ID.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	var row orderDetailRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Select(`orders.id, orders.status, orders.cep, orders.city, orders.region,
			orders.start_date_time, orders.end_date_time, orders.rental_fee, orders.fine,
			orders.total_value, orders.cancellation_date, orders.closing_date, orders.created_at,
			customers.id AS customer_id, customers.name AS customer_name,
			customers.cpf AS customer_cpf, customers.email AS customer_email,
			customers.phone AS customer_phone,
			cars.id AS car_id, cars.plate AS car_plate, cars.brand AS car_brand,
			cars.model AS car_model, cars.daily_price AS car_daily_price`).
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Joins("JOIN cars ON cars.id = orders.car_id").
		Where("orders.id = ?", query.OrderID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderByIDQueryResponse{},
				errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderByIDQueryResponse{}, err
	}

	items := make([]string, 0)
	err = h.db.WithContext(ctx).
		Table("items").
		Where("car_id = ?", row.CarID).
		Order("name").
		Pluck("name", &items).Error
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return buildOrderDetail(row, items)
}

func buildOrderDetail(row orderDetailRow, items []string) (GetOrderByIDQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	customerID, err := kernel.UUIDFromBytes(row.CustomerID[:])
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	carID, err := kernel.UUIDFromBytes(row.CarID[:])
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return GetOrderByIDQueryResponse{
		ID:               orderID,
		Status:           row.Status,
		CEP:              row.CEP,
		City:             row.City,
		Region:           row.Region,
		StartDateTime:    row.StartDateTime,
		EndDateTime:      row.EndDateTime,
		RentalFee:        row.RentalFee,
		Fine:             row.Fine,
		TotalValue:       row.TotalValue,
		CancellationDate: row.CancellationDate,
		ClosingDate:      row.ClosingDate,
		CreatedAt:        row.CreatedAt,
		Customer: CustomerSummary{
			ID:    customerID,
			Name:  row.CustomerName,
			CPF:   row.CustomerCPF,
			Email: row.CustomerEmail,
			Phone: row.CustomerPhone,
		},
		Car: CarSummary{
			ID:         carID,
			Plate:      row.CarPlate,
			Brand:      row.CarBrand,
			Model:      row.CarModel,
			DailyPrice: row.CarDailyPrice,
			Items:      items,
		},
	}, nil
}
