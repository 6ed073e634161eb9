package car

import (
	"errors"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// maxItems bounds the number of accessory items a single car may carry.
const maxItems = 5

var (
	// ErrCarIsNotConstructed is returned when a Car instance was not created
	// through the NewCar or RestoreCar factory methods.
	ErrCarIsNotConstructed = errors.New("Car must be created via NewCar or RestoreCar constructor")
)

// Car represents a rentable vehicle in the fleet. It is an aggregate root that
// owns its accessory items and guards its own lifecycle.
//
// Business rules:
//   - Only Active cars are orderable.
//   - Deleted cars are immutable: every mutation on a deleted car is rejected.
//   - A car carries at most five accessory items; updates replace the whole set.
//   - The daily price must be positive; it feeds the order pricing calculator.
type Car struct {
	id            kernel.UUID
	plate         string
	brand         string
	model         string
	km            int
	year          int
	dailyPrice    decimal.Decimal
	status        Status
	items         []*Item
	isConstructed bool
}

// NewCar creates an Active car with the given attributes and no items.
func NewCar(id kernel.UUID, plate, brand, model string, km, year int, dailyPrice decimal.Decimal) (*Car, error) {
	car := &Car{
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		car.setID(id),
		car.setPlate(plate),
		car.setBrand(brand),
		car.setModel(model),
		car.setKm(km),
		car.setYear(year),
		car.setDailyPrice(dailyPrice),
	); err != nil {
		return nil, err
	}

	return car, nil
}

// RestoreCar reconstructs a Car aggregate from persistence, including its
// accessory items and lifecycle status.
func RestoreCar(
	id kernel.UUID,
	plate, brand, model string,
	km, year int,
	dailyPrice decimal.Decimal,
	status Status,
	items []*Item,
) (*Car, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	car := &Car{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		car.setID(id),
		car.setPlate(plate),
		car.setBrand(brand),
		car.setModel(model),
		car.setKm(km),
		car.setYear(year),
		car.setDailyPrice(dailyPrice),
		car.setItems(items),
	); err != nil {
		return nil, err
	}

	return car, nil
}

// Validate ensures the Car instance was properly constructed through a constructor.
func (c *Car) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarIsNotConstructed
	}
	return nil
}

// IsEqual compares two cars by their unique identifiers.
func (c *Car) IsEqual(other *Car) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the car's unique identifier.
func (c *Car) ID() kernel.UUID { return c.id }

// Plate returns the registration plate.
func (c *Car) Plate() string { return c.plate }

// Brand returns the manufacturer name.
func (c *Car) Brand() string { return c.brand }

// Model returns the model name.
func (c *Car) Model() string { return c.model }

// Km returns the odometer reading.
func (c *Car) Km() int { return c.km }

// Year returns the manufacturing year.
func (c *Car) Year() int { return c.year }

// DailyPrice returns the price charged per rental day.
func (c *Car) DailyPrice() decimal.Decimal { return c.dailyPrice }

// Status returns the lifecycle status.
func (c *Car) Status() Status { return c.status }

// Items returns a copy of the accessory items.
func (c *Car) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// IsOrderable reports whether new orders may reference this car.
func (c *Car) IsOrderable() bool {
	return c.status == StatusActive
}

// Update replaces the car's descriptive attributes. Deleted cars cannot change.
func (c *Car) Update(plate, brand, model string, km, year int, dailyPrice decimal.Decimal) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}

	return errors.Join(
		c.setPlate(plate),
		c.setBrand(brand),
		c.setModel(model),
		c.setKm(km),
		c.setYear(year),
		c.setDailyPrice(dailyPrice),
	)
}

// ChangeStatus switches the car between Active and Inactive. Deletion goes
// through Delete, never through here.
func (c *Car) ChangeStatus(status Status) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}

	if status != StatusActive && status != StatusInactive {
		return errs.NewValueIsInvalidError("status")
	}

	c.status = status
	return nil
}

// ReplaceItems discards the current accessory set and attaches the given names
// as fresh items. At most five items are allowed.
func (c *Car) ReplaceItems(names []string) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}

	if len(names) > maxItems {
		return errs.NewValueIsOutOfRangeError("items", len(names), 0, maxItems)
	}

	items := make([]*Item, 0, len(names))
	for _, name := range names {
		item, err := NewItem(kernel.NewUUID(), name)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}

// Delete marks the car as logically removed. Idempotent deletes are rejected
// so callers can distinguish a repeat delete from a first one.
func (c *Car) Delete() error {
	if c.status == StatusDeleted {
		return errs.NewPreconditionFailedError("car is already deleted")
	}

	c.status = StatusDeleted
	return nil
}

func (c *Car) ensureMutable() error {
	if c.status == StatusDeleted {
		return errs.NewPreconditionFailedError("deleted car cannot be modified")
	}
	return nil
}

func (c *Car) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Car) setPlate(plate string) error {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	c.plate = plate
	return nil
}

func (c *Car) setBrand(brand string) error {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return errs.NewValueIsRequiredError("brand")
	}
	c.brand = brand
	return nil
}

func (c *Car) setModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	c.model = model
	return nil
}

func (c *Car) setKm(km int) error {
	if km < 0 {
		return errs.NewValueIsInvalidError("km")
	}
	c.km = km
	return nil
}

func (c *Car) setYear(year int) error {
	if year < 1900 || year > 2200 {
		return errs.NewValueIsOutOfRangeError("year", year, 1900, 2200)
	}
	c.year = year
	return nil
}

func (c *Car) setDailyPrice(dailyPrice decimal.Decimal) error {
	if dailyPrice.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidError("dailyPrice")
	}
	c.dailyPrice = dailyPrice
	return nil
}

func (c *Car) setItems(items []*Item) error {
	if len(items) > maxItems {
		return errs.NewValueIsOutOfRangeError("items", len(items), 0, maxItems)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]*Item, len(items))
	copy(c.items, items)
	return nil
}
