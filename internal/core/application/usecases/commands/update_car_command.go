package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrUpdateCarCommandIsNotConstructed = errors.New(
	"UpdateCarCommand must be created via NewUpdateCarCommand constructor",
)

// UpdateCarCommand represents a full update of a car's descriptive fields,
// status and accessory items. The status is the raw request token and is
// parsed here; only Active and Inactive are accepted as targets, deletion
// goes through DeleteCarCommand.
type UpdateCarCommand struct { //nolint:recvcheck //using for validation
	carID      kernel.UUID
	plate      string
	brand      string
	model      string
	km         int
	year       int
	dailyPrice decimal.Decimal
	status     car.Status
	items      []string

	guard guard.ConstructorGuard
}

// NewUpdateCarCommand creates a command to update a car.
func NewUpdateCarCommand(
	carID kernel.UUID,
	plate, brand, model string,
	km, year int,
	dailyPrice decimal.Decimal,
	status string,
	items []string,
) (UpdateCarCommand, error) {
	if err := carID.Validate(); err != nil {
		return UpdateCarCommand{}, err
	}

	parsed, err := car.ParseStatus(status)
	if err != nil {
		return UpdateCarCommand{}, err
	}

	return UpdateCarCommand{
		carID:      carID,
		plate:      plate,
		brand:      brand,
		model:      model,
		km:         km,
		year:       year,
		dailyPrice: dailyPrice,
		status:     parsed,
		items:      items,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCarCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCarCommandIsNotConstructed)
}

// CarID returns the identifier of the car being updated.
func (c UpdateCarCommand) CarID() kernel.UUID { return c.carID }

// Plate returns the license plate.
func (c UpdateCarCommand) Plate() string { return c.plate }

// Brand returns the manufacturer name.
func (c UpdateCarCommand) Brand() string { return c.brand }

// Model returns the model name.
func (c UpdateCarCommand) Model() string { return c.model }

// Km returns the odometer reading.
func (c UpdateCarCommand) Km() int { return c.km }

// Year returns the manufacturing year.
func (c UpdateCarCommand) Year() int { return c.year }

// DailyPrice returns the price charged per rental day.
func (c UpdateCarCommand) DailyPrice() decimal.Decimal { return c.dailyPrice }

// Status returns the requested car status.
func (c UpdateCarCommand) Status() car.Status { return c.status }

// Items returns the replacement accessory item names.
func (c UpdateCarCommand) Items() []string { return c.items }
