package commands

import (
	"context"
)

// DeleteCarCommandHandler retires a car by moving it to the Deleted status.
type DeleteCarCommandHandler struct {
	uowFactory CarUoWFactory
}

// NewDeleteCarCommandHandler creates a handler for car retirement.
func NewDeleteCarCommandHandler(uowFactory CarUoWFactory) DeleteCarCommandHandler {
	return DeleteCarCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the car retirement command.
func (h *DeleteCarCommandHandler) Handle(ctx context.Context, cmd DeleteCarCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.CarRepository().Get(ctx, cmd.CarID())
	if err != nil {
		return err
	}

	if err = existing.Delete(); err != nil {
		return err
	}

	if err = uow.CarRepository().Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
