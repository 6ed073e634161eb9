package commands

import (
	"context"
	"time"

	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies a partial update to an order: rental
// period changes, delivery address resolution, and lifecycle transitions.
// Everything is computed in memory against the loaded aggregate and persisted
// in a single commit, so a rejection anywhere leaves the order untouched.
//
// Whenever both rental dates are present after the patch the total value is
// recomputed from the car's current daily price, overwriting any previous
// value: total = ceil(rentalDays) × dailyPrice + rentalFee + fine.
type UpdateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	geoResolver ports.GeoResolver
	pricer      services.OrderPricer
	publisher   ports.OrderEventPublisher
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
// The publisher may be nil, in which case no events are emitted.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	geoResolver ports.GeoResolver,
	pricer services.OrderPricer,
	publisher ports.OrderEventPublisher,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory:  uowFactory,
		geoResolver: geoResolver,
		pricer:      pricer,
		publisher:   publisher,
	}
}

// Handle processes the order update command.
// Field patches are applied before the status transition, so a single request
// may schedule the rental period and approve the order at once.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	if cmd.StartDateTime() != nil {
		if err = ord.ScheduleStart(*cmd.StartDateTime(), now); err != nil {
			return err
		}
	}

	if cmd.EndDateTime() != nil {
		if err = ord.ScheduleEnd(*cmd.EndDateTime()); err != nil {
			return err
		}
	}

	if cmd.CEP() != nil {
		if err = h.resolveDeliveryAddress(ctx, ord, *cmd.CEP()); err != nil {
			return err
		}
	}

	if cmd.Status() != nil {
		if err = h.transition(ctx, uow, ord, *cmd.Status(), now); err != nil {
			return err
		}
	}

	if ord.HasRentalPeriod() {
		if err = h.recomputeTotal(ctx, uow, ord); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		// Best effort after commit; the publisher logs its own failures.
		_ = h.publisher.PublishOrderChanged(ctx, ord)
	}

	return nil
}

func (h *UpdateOrderCommandHandler) resolveDeliveryAddress(
	ctx context.Context,
	ord *order.Order,
	cep kernel.CEP,
) error {
	address, err := h.geoResolver.Resolve(ctx, cep)
	if err != nil {
		return err
	}

	return ord.SetDeliveryAddress(cep, address.City, address.Region, h.pricer.FreightFee(address.Region))
}

func (h *UpdateOrderCommandHandler) transition(
	ctx context.Context,
	uow OrderUoW,
	ord *order.Order,
	target order.Status,
	now time.Time,
) error {
	switch target {
	case order.Approved:
		return ord.Approve()
	case order.Cancelled:
		return ord.Cancel(now)
	case order.Closed:
		if err := ord.Close(now); err != nil {
			return err
		}
		return h.imposeFineIfOverdue(ctx, uow, ord, now)
	default:
		return errs.NewValueIsInvalidError("status")
	}
}

func (h *UpdateOrderCommandHandler) imposeFineIfOverdue(
	ctx context.Context,
	uow OrderUoW,
	ord *order.Order,
	now time.Time,
) error {
	if !ord.IsOverdueAt(now) {
		return nil
	}

	rentedCar, err := h.fetchCar(ctx, uow, ord)
	if err != nil {
		return err
	}

	fine := h.pricer.OverdueFine(*ord.EndDateTime(), now, rentedCar.DailyPrice())
	if fine == nil {
		return nil
	}

	return ord.ImposeFine(*fine)
}

func (h *UpdateOrderCommandHandler) recomputeTotal(
	ctx context.Context,
	uow OrderUoW,
	ord *order.Order,
) error {
	rentedCar, err := h.fetchCar(ctx, uow, ord)
	if err != nil {
		return err
	}

	total := h.pricer.TotalValue(
		*ord.StartDateTime(),
		*ord.EndDateTime(),
		rentedCar.DailyPrice(),
		ord.RentalFee(),
		ord.Fine(),
	)

	return ord.SetTotalValue(total)
}

func (h *UpdateOrderCommandHandler) fetchCar(
	ctx context.Context,
	uow OrderUoW,
	ord *order.Order,
) (*car.Car, error) {
	return uow.CarRepository().Get(ctx, ord.CarID())
}
