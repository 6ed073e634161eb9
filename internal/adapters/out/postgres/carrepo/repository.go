package carrepo

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarRepository implements CarRepository using GORM.
type GormCarRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarRepository creates a new GORM car repository.
func NewGormCarRepository(db *gorm.DB, tracker aggregateTracker) *GormCarRepository {
	return &GormCarRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new car and its accessory items to the database.
func (r *GormCarRepository) Add(ctx context.Context, aggregate *car.Car) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing car to the database. The accessory item set is
// replaced wholesale, matching the aggregate's replace-all semantics.
func (r *GormCarRepository) Update(ctx context.Context, aggregate *car.Car) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CarDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("Items").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Where("car_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a car by ID, including its accessory items.
func (r *GormCarRepository) Get(ctx context.Context, id kernel.UUID) (*car.Car, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("car", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
