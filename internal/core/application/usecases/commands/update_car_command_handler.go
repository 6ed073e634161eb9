package commands

import (
	"context"
)

// UpdateCarCommandHandler handles car updates: descriptive fields, status
// changes between Active and Inactive, and replacement of accessory items.
// Deleted cars reject any modification.
type UpdateCarCommandHandler struct {
	uowFactory CarUoWFactory
}

// NewUpdateCarCommandHandler creates a handler for car updates.
func NewUpdateCarCommandHandler(uowFactory CarUoWFactory) UpdateCarCommandHandler {
	return UpdateCarCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the car update command.
func (h *UpdateCarCommandHandler) Handle(ctx context.Context, cmd UpdateCarCommand) error {
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

	if err = existing.Update(
		cmd.Plate(), cmd.Brand(), cmd.Model(),
		cmd.Km(), cmd.Year(),
		cmd.DailyPrice(),
	); err != nil {
		return err
	}

	if err = existing.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = existing.ReplaceItems(cmd.Items()); err != nil {
		return err
	}

	if err = uow.CarRepository().Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
