package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// GetCarByIDQueryHandler reads one car and its accessory items.
type GetCarByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCarByIDQueryHandler creates a handler for single-car queries.
func NewGetCarByIDQueryHandler(db *gorm.DB) GetCarByIDQueryHandler {
	return GetCarByIDQueryHandler{db: db}
}

type carRow struct {
	ID         uuid.UUID
	Plate      string
	Brand      string
	Model      string
	Km         int
	Year       int
	DailyPrice decimal.Decimal
	Status     string
}

// Handle executes the query. Returns an ObjectNotFoundError when no car
// exists with the given ID.
func (h GetCarByIDQueryHandler) Handle(
	ctx context.Context,
	query GetCarByIDQuery,
) (GetCarByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCarByIDQueryResponse{}, err
	}

	var row carRow
	err := h.db.WithContext(ctx).
		Table("cars").
		Where("id = ?", query.CarID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetCarByIDQueryResponse{},
				errs.NewObjectNotFoundError("car", query.CarID().String())
		}
		return GetCarByIDQueryResponse{}, err
	}

	items := make([]string, 0)
	err = h.db.WithContext(ctx).
		Table("items").
		Where("car_id = ?", row.ID).
		Order("name").
		Pluck("name", &items).Error
	if err != nil {
		return GetCarByIDQueryResponse{}, err
	}

	carID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetCarByIDQueryResponse{}, err
	}

	return GetCarByIDQueryResponse{
		CarSummary: CarSummary{
			ID:         carID,
			Plate:      row.Plate,
			Brand:      row.Brand,
			Model:      row.Model,
			DailyPrice: row.DailyPrice,
			Items:      items,
		},
		Km:     row.Km,
		Year:   row.Year,
		Status: row.Status,
	}, nil
}
