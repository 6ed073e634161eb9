package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"rental/internal/adapters/out/postgres/carrepo"
	"rental/internal/adapters/out/postgres/customerrepo"
	"rental/internal/adapters/out/postgres/orderrepo"
	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/customer"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/migrations"
	"rental/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior, including
// the partial unique indexes that serialize open-order creation.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(sqlDB))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, items, cars, customers CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	customerID, carID := suite.seedCustomerAndCar(ctx)

	testOrder := suite.newOpenOrder(customerID, carID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SecondOpenOrderForCar_ReturnsConflict() {
	ctx := context.Background()
	customerID, carID := suite.seedCustomerAndCar(ctx)
	otherCustomerID, _ := suite.seedCustomerAndCar(ctx)

	first := suite.newOpenOrder(customerID, carID)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.newOpenOrder(otherCustomerID, carID)
	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_SecondOpenOrderForCustomer_ReturnsConflict() {
	ctx := context.Background()
	customerID, carID := suite.seedCustomerAndCar(ctx)
	_, otherCarID := suite.seedCustomerAndCar(ctx)

	first := suite.newOpenOrder(customerID, carID)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.newOpenOrder(customerID, otherCarID)
	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_CancelledOrderDoesNotBlockCar() {
	ctx := context.Background()
	customerID, carID := suite.seedCustomerAndCar(ctx)
	otherCustomerID, _ := suite.seedCustomerAndCar(ctx)

	cancelled := suite.newOpenOrder(customerID, carID)
	suite.Require().NoError(cancelled.Cancel(time.Now()))
	suite.tracker.On("TrackAggregate", cancelled.ID(), cancelled).Once()
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	fresh := suite.newOpenOrder(otherCustomerID, carID)
	suite.tracker.On("TrackAggregate", fresh.ID(), fresh).Once()

	suite.Require().NoError(suite.repository.Add(ctx, fresh))
	suite.assertOrderCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	ctx := context.Background()
	customerID, carID := suite.seedCustomerAndCar(ctx)

	now := time.Now().UTC().Truncate(time.Microsecond)
	start := now.Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)

	testOrder := suite.newOpenOrder(customerID, carID)
	suite.Require().NoError(testOrder.ScheduleStart(start, now))
	suite.Require().NoError(testOrder.ScheduleEnd(end))
	cep, err := kernel.NewCEP("69900-070")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.SetDeliveryAddress(cep, "Rio Branco", "AC", decimal.NewFromFloat(40.0)))
	suite.Require().NoError(testOrder.SetTotalValue(decimal.NewFromFloat(240.0)))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.True(retrieved.CustomerID().IsEqual(customerID))
	suite.True(retrieved.CarID().IsEqual(carID))
	suite.Equal(order.Open, retrieved.Status())
	suite.Equal("69900070", retrieved.CEP().String())
	suite.Equal("Rio Branco", *retrieved.City())
	suite.Equal("AC", *retrieved.Region())
	suite.True(retrieved.StartDateTime().Equal(start))
	suite.True(retrieved.EndDateTime().Equal(end))
	suite.True(retrieved.RentalFee().Equal(decimal.NewFromFloat(40.0)))
	suite.Nil(retrieved.Fine())
	suite.True(retrieved.TotalValue().Equal(decimal.NewFromFloat(240.0)))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleChanges() {
	ctx := context.Background()
	customerID, carID := suite.seedCustomerAndCar(ctx)

	now := time.Now().UTC().Truncate(time.Microsecond)
	testOrder := suite.newOpenOrder(customerID, carID)
	suite.Require().NoError(testOrder.ScheduleStart(now.Add(time.Hour), now))
	suite.Require().NoError(testOrder.ScheduleEnd(now.Add(48*time.Hour)))
	cep, err := kernel.NewCEP("69900070")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.SetDeliveryAddress(cep, "Rio Branco", "AC", decimal.NewFromFloat(40.0)))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Approve())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Approved, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsFine() {
	ctx := context.Background()
	customerID, carID := suite.seedCustomerAndCar(ctx)

	now := time.Now().UTC().Truncate(time.Microsecond)
	testOrder := suite.newOpenOrder(customerID, carID)
	suite.Require().NoError(testOrder.ScheduleStart(now.Add(time.Hour), now))
	suite.Require().NoError(testOrder.ScheduleEnd(now.Add(48*time.Hour)))
	cep, err := kernel.NewCEP("69900070")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.SetDeliveryAddress(cep, "Rio Branco", "AC", decimal.NewFromFloat(40.0)))
	suite.Require().NoError(testOrder.Approve())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Close(now.Add(96*time.Hour)))
	suite.Require().NoError(testOrder.ImposeFine(decimal.NewFromFloat(400.0)))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Closed, retrieved.Status())
	suite.Require().NotNil(retrieved.Fine())
	suite.True(retrieved.Fine().Equal(decimal.NewFromFloat(400.0)))
	suite.NotNil(retrieved.ClosingDate())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()
	customerID, carID := suite.seedCustomerAndCar(ctx)

	nonExistent := suite.newOpenOrder(customerID, carID)

	err := suite.repository.Update(ctx, nonExistent)

	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOpenByCarID() {
	ctx := context.Background()
	customerID, carID := suite.seedCustomerAndCar(ctx)

	testOrder := suite.newOpenOrder(customerID, carID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Run("finds the open order", func() {
		found, err := suite.repository.GetOpenByCarID(ctx, carID)
		suite.Require().NoError(err)
		suite.True(found.ID().IsEqual(testOrder.ID()))
	})

	suite.Run("reports not found for another car", func() {
		_, otherCarID := suite.seedCustomerAndCar(ctx)

		_, err := suite.repository.GetOpenByCarID(ctx, otherCarID)

		var notFoundErr *errs.ObjectNotFoundError
		suite.Require().ErrorAs(err, &notFoundErr)
	})

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOpenByCustomerID() {
	ctx := context.Background()
	customerID, carID := suite.seedCustomerAndCar(ctx)

	testOrder := suite.newOpenOrder(customerID, carID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Run("finds the open order", func() {
		found, err := suite.repository.GetOpenByCustomerID(ctx, customerID)
		suite.Require().NoError(err)
		suite.True(found.ID().IsEqual(testOrder.ID()))
	})

	suite.Run("ignores non-open orders", func() {
		suite.Require().NoError(testOrder.Cancel(time.Now()))
		suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
		suite.Require().NoError(suite.repository.Update(ctx, testOrder))

		_, err := suite.repository.GetOpenByCustomerID(ctx, customerID)

		var notFoundErr *errs.ObjectNotFoundError
		suite.Require().ErrorAs(err, &notFoundErr)
	})

	suite.tracker.AssertExpectations(suite.T())
}

// seedCustomerAndCar inserts a customer and a car the orders can reference
// and returns their identifiers. Each call produces fresh unique values.
func (suite *OrderRepositoryIntegrationTestSuite) seedCustomerAndCar(ctx context.Context) (kernel.UUID, kernel.UUID) {
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	customerID := kernel.NewUUID()
	cpf := "529" + customerID.String()[:8]
	cpfDigits := make([]rune, 0, 11)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			cpfDigits = append(cpfDigits, r)
		}
	}
	for len(cpfDigits) < 11 {
		cpfDigits = append(cpfDigits, '0')
	}

	testCustomer, err := customer.NewCustomer(customerID, "Maria Silva",
		time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
		string(cpfDigits[:11]), customerID.String()+"@example.com", "+55 11 99999-0000")
	suite.Require().NoError(err)
	suite.Require().NoError(customerrepo.NewGormCustomerRepository(suite.db, tracker).Add(ctx, testCustomer))

	carID := kernel.NewUUID()
	testCar, err := car.NewCar(carID, "ABC"+carID.String()[:4], "Fiat", "Argo", 15000, 2022, decimal.NewFromFloat(100.0))
	suite.Require().NoError(err)
	suite.Require().NoError(carrepo.NewGormCarRepository(suite.db, tracker).Add(ctx, testCar))

	return customerID, carID
}

func (suite *OrderRepositoryIntegrationTestSuite) newOpenOrder(customerID, carID kernel.UUID) *order.Order {
	testOrder, err := order.NewOrder(kernel.NewUUID(), customerID, carID, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
