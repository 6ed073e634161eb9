// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column stores the canonical lifecycle token; the two partial
// unique indexes on (car_id) and (customer_id) where status = 'Open' are
// created by the schema migrations and serialize concurrent order creation.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index"`
	CarID            uuid.UUID `gorm:"type:uuid;index"`
	Status           string    `gorm:"type:text;index"`
	CEP              *string
	City             *string
	Region           *string
	StartDateTime    *time.Time
	EndDateTime      *time.Time
	RentalFee        decimal.Decimal  `gorm:"type:numeric"`
	Fine             *decimal.Decimal `gorm:"type:numeric"`
	TotalValue       decimal.Decimal  `gorm:"type:numeric"`
	CancellationDate *time.Time
	ClosingDate      *time.Time
	CreatedAt        time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var cep *string
	if c := aggregate.CEP(); c != nil {
		raw := c.String()
		cep = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		CarID:            aggregate.CarID().Bytes(),
		Status:           aggregate.Status().String(),
		CEP:              cep,
		City:             aggregate.City(),
		Region:           aggregate.Region(),
		StartDateTime:    aggregate.StartDateTime(),
		EndDateTime:      aggregate.EndDateTime(),
		RentalFee:        aggregate.RentalFee(),
		Fine:             aggregate.Fine(),
		TotalValue:       aggregate.TotalValue(),
		CancellationDate: aggregate.CancellationDate(),
		ClosingDate:      aggregate.ClosingDate(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	carID, err := kernel.UUIDFromBytes(dto.CarID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var cep *kernel.CEP
	if dto.CEP != nil {
		restored, cepErr := kernel.NewCEP(*dto.CEP)
		if cepErr != nil {
			return nil, cepErr
		}
		cep = &restored
	}

	return order.RestoreOrder(
		id, customerID, carID,
		status,
		cep, dto.City, dto.Region,
		dto.StartDateTime, dto.EndDateTime,
		dto.RentalFee, dto.Fine, dto.TotalValue,
		dto.CancellationDate, dto.ClosingDate,
		dto.CreatedAt,
	)
}
