package commands

import (
	"context"

	"rental/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles customer registration. A duplicate cpf
// or email among non-deleted customers surfaces as a conflict from the
// repository's unique indexes.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newCustomer, err := customer.NewCustomer(
		cmd.CustomerID(),
		cmd.Name(),
		cmd.DateOfBirth(),
		cmd.CPF(), cmd.Email(), cmd.Phone(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, newCustomer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
