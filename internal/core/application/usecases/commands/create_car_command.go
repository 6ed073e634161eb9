package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrCreateCarCommandIsNotConstructed = errors.New(
	"CreateCarCommand must be created via NewCreateCarCommand constructor",
)

// CreateCarCommand represents a request to register a car in the rental fleet,
// optionally with up to five accessory items. Field rules (plate format, year
// range, positive daily price) are enforced by the Car aggregate.
type CreateCarCommand struct { //nolint:recvcheck //using for validation
	carID      kernel.UUID
	plate      string
	brand      string
	model      string
	km         int
	year       int
	dailyPrice decimal.Decimal
	items      []string

	guard guard.ConstructorGuard
}

// NewCreateCarCommand creates a command to register a car.
func NewCreateCarCommand(
	carID kernel.UUID,
	plate, brand, model string,
	km, year int,
	dailyPrice decimal.Decimal,
	items []string,
) (CreateCarCommand, error) {
	if err := carID.Validate(); err != nil {
		return CreateCarCommand{}, err
	}

	return CreateCarCommand{
		carID:      carID,
		plate:      plate,
		brand:      brand,
		model:      model,
		km:         km,
		year:       year,
		dailyPrice: dailyPrice,
		items:      items,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarCommandIsNotConstructed)
}

// CarID returns the identifier for the new car.
func (c CreateCarCommand) CarID() kernel.UUID { return c.carID }

// Plate returns the license plate.
func (c CreateCarCommand) Plate() string { return c.plate }

// Brand returns the manufacturer name.
func (c CreateCarCommand) Brand() string { return c.brand }

// Model returns the model name.
func (c CreateCarCommand) Model() string { return c.model }

// Km returns the odometer reading.
func (c CreateCarCommand) Km() int { return c.km }

// Year returns the manufacturing year.
func (c CreateCarCommand) Year() int { return c.year }

// DailyPrice returns the price charged per rental day.
func (c CreateCarCommand) DailyPrice() decimal.Decimal { return c.dailyPrice }

// Items returns the accessory item names.
func (c CreateCarCommand) Items() []string { return c.items }
