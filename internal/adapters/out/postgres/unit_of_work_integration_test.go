package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "rental/internal/adapters/out/postgres"
	"rental/internal/core/domain/model/car"
	"rental/internal/core/domain/model/customer"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
	"rental/internal/migrations"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(sqlDB))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, items, cars, customers, users CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CarRepository())
	suite.NotNil(uow2.CustomerRepository())
	suite.NotNil(uow2.UserRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderCreationWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := createTestCustomer(suite)
	testCar := createTestCar(suite)

	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.CustomerRepository().Add(ctx, testCustomer))
	suite.Require().NoError(uow.CarRepository().Add(ctx, testCar))

	testOrder, err := order.NewOrder(kernel.NewUUID(), testCustomer.ID(), testCar.ID(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedOrder.CustomerID().IsEqual(testCustomer.ID()))
	suite.True(retrievedOrder.CarID().IsEqual(testCar.ID()))
	suite.Equal(order.Open, retrievedOrder.Status())

	retrievedCar, err := newUow.CarRepository().Get(ctx, testCar.ID())
	suite.Require().NoError(err)
	suite.True(retrievedCar.IsOrderable())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := createTestCustomer(suite)
	testCar := createTestCar(suite)

	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.CustomerRepository().Add(ctx, testCustomer))
	suite.Require().NoError(uow.CarRepository().Add(ctx, testCar))

	_, err := uow.CarRepository().Get(ctx, testCar.ID())
	suite.Require().NoError(err, "Car should be visible within transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()

	_, err = newUow.CarRepository().Get(ctx, testCar.ID())
	suite.Require().Error(err, "Car should not exist after rollback")

	_, err = newUow.CustomerRepository().Get(ctx, testCustomer.ID())
	suite.Require().Error(err, "Customer should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	car1 := createTestCar(suite)
	car2 := createTestCar(suite)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.CarRepository().Add(ctx, car1))
	suite.Require().NoError(uow2.CarRepository().Add(ctx, car2))

	_, err := uow1.CarRepository().Get(ctx, car1.ID())
	suite.Require().NoError(err, "UOW1 should see car1")

	_, err = uow1.CarRepository().Get(ctx, car2.ID())
	suite.Require().Error(err, "UOW1 should not see car2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.CarRepository().Get(ctx, car1.ID())
	suite.Require().NoError(err, "Car1 should persist after commit")

	_, err = newUow.CarRepository().Get(ctx, car2.ID())
	suite.Require().Error(err, "Car2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCar := createTestCar(suite)

	suite.Require().NoError(uow.CarRepository().Add(ctx, testCar))

	retrievedCar, err := uow.CarRepository().Get(ctx, testCar.ID())
	suite.Require().NoError(err)
	suite.True(retrievedCar.ID().IsEqual(testCar.ID()))

	newUow := suite.factory.Create()
	retrievedCar, err = newUow.CarRepository().Get(ctx, testCar.ID())
	suite.Require().NoError(err)
	suite.True(retrievedCar.ID().IsEqual(testCar.ID()))
}

// createTestCustomer builds a customer with unique cpf and email.
func createTestCustomer(suite *UnitOfWorkIntegrationTestSuite) *customer.Customer {
	id := kernel.NewUUID()
	digits := make([]rune, 0, 11)
	for _, r := range id.String() {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	for len(digits) < 11 {
		digits = append(digits, '7')
	}

	testCustomer, err := customer.NewCustomer(id, "Maria Silva",
		time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
		string(digits[:11]), id.String()+"@example.com", "+55 11 99999-0000")
	suite.Require().NoError(err)
	return testCustomer
}

// createTestCar builds an active car with a unique plate.
func createTestCar(suite *UnitOfWorkIntegrationTestSuite) *car.Car {
	id := kernel.NewUUID()
	testCar, err := car.NewCar(id, "ABC"+id.String()[:4], "Fiat", "Argo", 15000, 2022, decimal.NewFromFloat(100.0))
	suite.Require().NoError(err)
	return testCar
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
