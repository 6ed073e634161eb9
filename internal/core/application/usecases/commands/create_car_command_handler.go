package commands

import (
	"context"

	"rental/internal/core/domain/model/car"
)

// CreateCarCommandHandler handles car registration. New cars start in the
// Active status. A duplicate plate among non-deleted cars surfaces as a
// conflict from the repository's unique index.
type CreateCarCommandHandler struct {
	uowFactory CarUoWFactory
}

// NewCreateCarCommandHandler creates a handler for car registration.
func NewCreateCarCommandHandler(uowFactory CarUoWFactory) CreateCarCommandHandler {
	return CreateCarCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the car registration command.
func (h *CreateCarCommandHandler) Handle(ctx context.Context, cmd CreateCarCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newCar, err := car.NewCar(
		cmd.CarID(),
		cmd.Plate(), cmd.Brand(), cmd.Model(),
		cmd.Km(), cmd.Year(),
		cmd.DailyPrice(),
	)
	if err != nil {
		return err
	}

	if len(cmd.Items()) > 0 {
		if err = newCar.ReplaceItems(cmd.Items()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CarRepository().Add(ctx, newCar); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
