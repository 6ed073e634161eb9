package commands

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of a rental order. Every
// field except the order ID is optional; nil means "leave unchanged". A
// status value requests a lifecycle transition: Approved, Cancelled or
// Closed.
//
// Example:
//
//	start := time.Now().Add(24 * time.Hour)
//	cmd, err := NewUpdateOrderCommand(orderID, &start, nil, nil, nil)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewUpdateOrderCommandHandler(uowFactory, geoResolver, pricer, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	startDateTime *time.Time
	endDateTime   *time.Time
	cep           *kernel.CEP
	status        *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an order. The cep and
// status inputs are raw request strings; both are parsed here so a malformed
// value is rejected before any repository work starts.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	startDateTime, endDateTime *time.Time,
	cep *string,
	status *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		startDateTime: startDateTime,
		endDateTime:   endDateTime,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCEP(cep),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StartDateTime returns the requested rental start, or nil when unchanged.
func (c UpdateOrderCommand) StartDateTime() *time.Time {
	return c.startDateTime
}

// EndDateTime returns the requested rental end, or nil when unchanged.
func (c UpdateOrderCommand) EndDateTime() *time.Time {
	return c.endDateTime
}

// CEP returns the requested delivery postal code, or nil when unchanged.
func (c UpdateOrderCommand) CEP() *kernel.CEP {
	return c.cep
}

// Status returns the requested lifecycle transition, or nil when unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCEP(raw *string) error {
	if raw == nil {
		return nil
	}

	cep, err := kernel.NewCEP(*raw)
	if err != nil {
		return err
	}

	c.cep = &cep
	return nil
}

func (c *UpdateOrderCommand) setStatus(raw *string) error {
	if raw == nil {
		return nil
	}

	status, err := order.ParseStatus(*raw)
	if err != nil {
		return err
	}
	if status == order.Open {
		// Open is the creation status, never a transition target.
		return errs.NewValueIsInvalidError("status")
	}

	c.status = &status
	return nil
}
