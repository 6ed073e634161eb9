// Package carrepo provides data transfer objects and mapping functions for car
// persistence, including the accessory items owned by each car.
package carrepo

import (
	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CarDTO represents the database structure for persisting car aggregates.
type CarDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate      string    `gorm:"type:text"`
	Brand      string    `gorm:"type:text"`
	Model      string    `gorm:"type:text"`
	Km         int
	Year       int
	DailyPrice decimal.Decimal `gorm:"type:numeric"`
	Status     string          `gorm:"type:text;index"`
	Items      []ItemDTO       `gorm:"foreignKey:CarID"`
}

// TableName specifies the database table name for car entities.
func (CarDTO) TableName() string {
	return "cars"
}

// ItemDTO represents an accessory item row owned by a car.
type ItemDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarID uuid.UUID `gorm:"type:uuid;index"`
	Name  string    `gorm:"type:text"`
}

// TableName specifies the database table name for accessory items.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts a car domain aggregate to its database representation.
func fromDomain(aggregate *car.Car) CarDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:    item.ID().Bytes(),
			CarID: aggregate.ID().Bytes(),
			Name:  item.Name(),
		})
	}

	return CarDTO{
		ID:         aggregate.ID().Bytes(),
		Plate:      aggregate.Plate(),
		Brand:      aggregate.Brand(),
		Model:      aggregate.Model(),
		Km:         aggregate.Km(),
		Year:       aggregate.Year(),
		DailyPrice: aggregate.DailyPrice(),
		Status:     aggregate.Status().String(),
		Items:      items,
	}
}

// toDomain converts a database DTO to a car domain aggregate using RestoreCar.
func toDomain(dto CarDTO) (*car.Car, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := car.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*car.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := car.RestoreItem(itemID, itemDTO.Name)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return car.RestoreCar(id, dto.Plate, dto.Brand, dto.Model, dto.Km, dto.Year, dto.DailyPrice, status, items)
}
