package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

func TestCreateCarCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCarCommand(
		kernel.NewUUID(),
		"abc1d23", "Toyota", "Corolla",
		10000, 2022,
		decimal.NewFromInt(100),
		[]string{"GPS", "Child seat"},
	)
	require.NoError(t, err)

	carRepo := new(MockCarRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CarRepository").Return(carRepo).Once()
	carRepo.On("Add", ctx, mock.AnythingOfType("*car.Car")).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*car.Car)
			assert.Equal(t, "ABC1D23", created.Plate())
			assert.Equal(t, car.StatusActive, created.Status())
			assert.Len(t, created.Items(), 2)
		}).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCarUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCarCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	carRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCarCommandHandler_Handle_TooManyItems(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCarCommand(
		kernel.NewUUID(),
		"ABC1D23", "Toyota", "Corolla",
		10000, 2022,
		decimal.NewFromInt(100),
		[]string{"a", "b", "c", "d", "e", "f"},
	)
	require.NoError(t, err)

	factory := new(MockCarUoWFactory)
	h := commands.NewCreateCarCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCarCommandHandler_Handle_DuplicatePlate(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCarCommand(
		kernel.NewUUID(),
		"ABC1D23", "Toyota", "Corolla",
		10000, 2022,
		decimal.NewFromInt(100),
		nil,
	)
	require.NoError(t, err)

	carRepo := new(MockCarRepository)
	uow := new(MockUnitOfWork)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CarRepository").Return(carRepo).Once()
	carRepo.On("Add", ctx, mock.AnythingOfType("*car.Car")).
		Return(errs.NewConflictError("car")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCarUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCarCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
