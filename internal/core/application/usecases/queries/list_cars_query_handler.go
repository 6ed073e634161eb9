package queries

import (
	"context"

	"gorm.io/gorm"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
)

// ListCarsQueryHandler reads a filtered, paginated page of cars with their
// accessory items.
type ListCarsQueryHandler struct {
	db *gorm.DB
}

// NewListCarsQueryHandler creates a handler for car list queries.
func NewListCarsQueryHandler(db *gorm.DB) ListCarsQueryHandler {
	return ListCarsQueryHandler{db: db}
}

// Handle executes the query, returning the requested page and the totals for
// the full filtered set.
func (h ListCarsQueryHandler) Handle(
	ctx context.Context,
	query ListCarsQuery,
) (ListCarsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCarsQueryResponse{}, err
	}

	base := h.db.WithContext(ctx).Table("cars")

	if query.Status() != nil {
		base = base.Where("status = ?", *query.Status())
	} else {
		base = base.Where("status <> ?", car.StatusDeleted.String())
	}
	if query.Brand() != nil {
		base = base.Where("brand ILIKE ?", *query.Brand()+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ListCarsQueryResponse{}, err
	}

	rows := make([]carRow, 0)
	err := base.Session(&gorm.Session{}).
		Order(query.SortColumn()).
		Offset(query.Pagination().Offset()).
		Limit(query.Pagination().Size()).
		Find(&rows).Error
	if err != nil {
		return ListCarsQueryResponse{}, err
	}

	cars := make([]GetCarByIDQueryResponse, 0, len(rows))
	for _, row := range rows {
		items := make([]string, 0)
		err = h.db.WithContext(ctx).
			Table("items").
			Where("car_id = ?", row.ID).
			Order("name").
			Pluck("name", &items).Error
		if err != nil {
			return ListCarsQueryResponse{}, err
		}

		carID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return ListCarsQueryResponse{}, idErr
		}

		cars = append(cars, GetCarByIDQueryResponse{
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
		})
	}

	return ListCarsQueryResponse{
		Cars:        cars,
		Total:       total,
		Pages:       query.Pagination().Pages(total),
		CurrentPage: query.Pagination().Page(),
	}, nil
}
