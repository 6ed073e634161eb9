package commands

import (
	"context"
)

// UpdateCustomerCommandHandler handles customer profile updates.
// Deleted customers reject any modification.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer update command.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	existing, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = existing.Update(
		cmd.Name(),
		cmd.DateOfBirth(),
		cmd.CPF(), cmd.Email(), cmd.Phone(),
	); err != nil {
		return err
	}

	if err = uow.CustomerRepository().Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
