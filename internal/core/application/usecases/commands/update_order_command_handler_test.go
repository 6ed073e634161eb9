package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// restoreApprovedOrder builds an Approved order with the given rental period
// and a resolved delivery address (AC region, fee 40).
func restoreApprovedOrder(t *testing.T, start, end time.Time, rentalFee decimal.Decimal) *order.Order {
	t.Helper()

	cep, err := kernel.NewCEP("69900070")
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Approved,
		&cep,
		strPtr("Rio Branco"), strPtr("AC"),
		&start, &end,
		rentalFee,
		nil,
		decimal.Zero,
		nil, nil,
		start.Add(-time.Hour),
	)
	require.NoError(t, err)
	return o
}

// expectOrderUpdate wires the happy-path Begin/Get/Update/Commit choreography.
func expectOrderUpdate(
	ctx context.Context,
	uow *MockUnitOfWork,
	orderRepo *MockOrderRepository,
	existing *order.Order,
) {
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
}

func TestUpdateOrderCommandHandler_Handle_SchedulesPeriodAndRecomputesTotal(t *testing.T) {
	ctx := t.Context()
	existing := newTestOpenOrder(t)
	start := time.Now().UTC().Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)

	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), timePtr(start), timePtr(end), nil, nil)
	require.NoError(t, err)

	rentedCar := newTestCar(t) // daily price 100

	orderRepo := new(MockOrderRepository)
	carRepo := new(MockCarRepository)
	uow := new(MockUnitOfWork)
	expectOrderUpdate(ctx, uow, orderRepo, existing)
	uow.On("CarRepository").Return(carRepo).Once()
	carRepo.On("Get", ctx, existing.CarID()).Return(rentedCar, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, new(MockGeoResolver), services.NewOrderPricer(), nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Open, existing.Status())
	require.NotNil(t, existing.StartDateTime())
	require.NotNil(t, existing.EndDateTime())
	// 2 rental days at 100, no freight fee yet
	assert.True(t, existing.TotalValue().Equal(decimal.NewFromInt(200)),
		"total = %s", existing.TotalValue())
}

func TestUpdateOrderCommandHandler_Handle_ResolvesDeliveryAddress(t *testing.T) {
	ctx := t.Context()
	existing := newTestOpenOrder(t)

	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), nil, nil, strPtr("69900070"), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	expectOrderUpdate(ctx, uow, orderRepo, existing)

	geo := new(MockGeoResolver)
	geo.On("Resolve", ctx, mock.AnythingOfType("kernel.CEP")).
		Return(ports.Address{City: "Rio Branco", Region: "AC"}, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, geo, services.NewOrderPricer(), nil)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, existing.CEP())
	assert.Equal(t, "69900070", existing.CEP().String())
	assert.Equal(t, "Rio Branco", *existing.City())
	assert.Equal(t, "AC", *existing.Region())
	assert.True(t, existing.RentalFee().Equal(decimal.NewFromInt(40)))
	geo.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_GeoResolverFailureRejectsUpdate(t *testing.T) {
	ctx := t.Context()
	existing := newTestOpenOrder(t)

	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), nil, nil, strPtr("69900070"), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	geo := new(MockGeoResolver)
	geo.On("Resolve", ctx, mock.AnythingOfType("kernel.CEP")).
		Return(ports.Address{}, errs.NewObjectNotFoundError("cep", "69900070")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, geo, services.NewOrderPricer(), nil)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_ApprovesScheduledOrder(t *testing.T) {
	ctx := t.Context()
	existing := newTestOpenOrder(t)
	start := time.Now().UTC().Add(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	cmd, err := commands.NewUpdateOrderCommand(
		existing.ID(),
		timePtr(start), timePtr(end),
		strPtr("69900070"),
		strPtr("Approved"),
	)
	require.NoError(t, err)

	rentedCar := newTestCar(t)

	orderRepo := new(MockOrderRepository)
	carRepo := new(MockCarRepository)
	uow := new(MockUnitOfWork)
	expectOrderUpdate(ctx, uow, orderRepo, existing)
	uow.On("CarRepository").Return(carRepo).Once()
	carRepo.On("Get", ctx, existing.CarID()).Return(rentedCar, nil).Once()

	geo := new(MockGeoResolver)
	geo.On("Resolve", ctx, mock.AnythingOfType("kernel.CEP")).
		Return(ports.Address{City: "Rio Branco", Region: "AC"}, nil).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", ctx, existing).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(factory, geo, services.NewOrderPricer(), publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Approved, existing.Status())
	// 1 rental day at 100 plus AC freight fee 40
	assert.True(t, existing.TotalValue().Equal(decimal.NewFromInt(140)),
		"total = %s", existing.TotalValue())
	publisher.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_ApproveWithoutAddressFails(t *testing.T) {
	ctx := t.Context()
	existing := newTestOpenOrder(t)
	start := time.Now().UTC().Add(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	cmd, err := commands.NewUpdateOrderCommand(
		existing.ID(),
		timePtr(start), timePtr(end),
		nil,
		strPtr("Approved"),
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(
		factory, new(MockGeoResolver), services.NewOrderPricer(), nil)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderCommandHandler_Handle_ClosesOverdueOrderWithFine(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	// rented for one day, returned a day and a half late
	start := now.Add(-60 * time.Hour)
	end := now.Add(-36 * time.Hour)
	existing := restoreApprovedOrder(t, start, end, decimal.NewFromInt(40))

	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), nil, nil, nil, strPtr("Closed"))
	require.NoError(t, err)

	rentedCar := newTestCar(t) // daily price 100

	orderRepo := new(MockOrderRepository)
	carRepo := new(MockCarRepository)
	uow := new(MockUnitOfWork)
	expectOrderUpdate(ctx, uow, orderRepo, existing)
	uow.On("CarRepository").Return(carRepo).Twice()
	carRepo.On("Get", ctx, existing.CarID()).Return(rentedCar, nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(
		factory, new(MockGeoResolver), services.NewOrderPricer(), nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Closed, existing.Status())
	require.NotNil(t, existing.ClosingDate())
	require.NotNil(t, existing.Fine())
	// ceil(1.5 days overdue) = 2 days, doubled daily price: 2 × 100 × 2
	assert.True(t, existing.Fine().Equal(decimal.NewFromInt(400)),
		"fine = %s", existing.Fine())
	// 1 rental day at 100 + fee 40 + fine 400
	assert.True(t, existing.TotalValue().Equal(decimal.NewFromInt(540)),
		"total = %s", existing.TotalValue())
}

func TestUpdateOrderCommandHandler_Handle_ClosesOnTimeWithoutFine(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	start := now.Add(-24 * time.Hour)
	end := now.Add(time.Hour)
	existing := restoreApprovedOrder(t, start, end, decimal.NewFromInt(40))

	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), nil, nil, nil, strPtr("Closed"))
	require.NoError(t, err)

	rentedCar := newTestCar(t)

	orderRepo := new(MockOrderRepository)
	carRepo := new(MockCarRepository)
	uow := new(MockUnitOfWork)
	expectOrderUpdate(ctx, uow, orderRepo, existing)
	uow.On("CarRepository").Return(carRepo).Once()
	carRepo.On("Get", ctx, existing.CarID()).Return(rentedCar, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(
		factory, new(MockGeoResolver), services.NewOrderPricer(), nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Closed, existing.Status())
	assert.Nil(t, existing.Fine())
	// ceil(25h / 24h) = 2 rental days at 100 + fee 40
	assert.True(t, existing.TotalValue().Equal(decimal.NewFromInt(240)),
		"total = %s", existing.TotalValue())
}

func TestUpdateOrderCommandHandler_Handle_CancelsOpenOrder(t *testing.T) {
	ctx := t.Context()
	existing := newTestOpenOrder(t)

	cmd, err := commands.NewUpdateOrderCommand(existing.ID(), nil, nil, nil, strPtr("Cancelled"))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	expectOrderUpdate(ctx, uow, orderRepo, existing)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderCommandHandler(
		factory, new(MockGeoResolver), services.NewOrderPricer(), nil)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, existing.Status())
	assert.NotNil(t, existing.CancellationDate())
}

func TestNewUpdateOrderCommand_RejectsInvalidInputs(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("open is not a transition target", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(orderID, nil, nil, nil, strPtr("Open"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown status token", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(orderID, nil, nil, nil, strPtr("Finished"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("malformed cep", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(orderID, nil, nil, strPtr("123"), nil)
		require.Error(t, err)
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(kernel.UUID{}, nil, nil, nil, nil)
		require.Error(t, err)
	})
}
