package commands

import (
	"context"
	"errors"
	"time"

	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for opening rental orders.
// Enforces the availability rules before persisting: the customer must exist and
// not be deleted, the car must be Active, and neither the car nor the customer may
// already have an open order. The database carries partial unique indexes over
// open orders, so a concurrent creation that slips past these checks surfaces as
// a conflict from the repository.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// The publisher may be nil, in which case no events are emitted.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// The order is created in the Open status with pricing fields zeroed.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	customer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if customer.IsDeleted() {
		return errs.NewPreconditionFailedError("customer is deleted")
	}

	car, err := uow.CarRepository().Get(ctx, cmd.CarID())
	if err != nil {
		return err
	}
	if !car.IsOrderable() {
		return errs.NewPreconditionFailedError("car is not available for rental")
	}

	orderRepo := uow.OrderRepository()
	openByCar, err := orderRepo.GetOpenByCarID(ctx, cmd.CarID())
	if err = ensureNoOpenOrder(openByCar, err, "car already has an open order"); err != nil {
		return err
	}

	openByCustomer, err := orderRepo.GetOpenByCustomerID(ctx, cmd.CustomerID())
	if err = ensureNoOpenOrder(openByCustomer, err, "customer already has an open order"); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.CarID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		// Best effort after commit; the publisher logs its own failures.
		_ = h.publisher.PublishOrderChanged(ctx, newOrder)
	}

	return nil
}

func ensureNoOpenOrder(existing *order.Order, err error, reason string) error {
	if err == nil && existing != nil {
		return errs.NewPreconditionFailedError(reason)
	}
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	return nil
}
