// Package cmd wires the application together: configuration, the database,
// outbound adapters and the use case handlers behind the HTTP API.
package cmd

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"rental/internal/adapters/out/kafka"
	"rental/internal/adapters/out/postgres"
	"rental/internal/adapters/out/viacep"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/jobs"
	"rental/internal/pkg/token"
)

// CompositionRoot builds the use case handlers with their dependencies.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	geoResolver ports.GeoResolver
	pricer      services.OrderPricer
	publisher   ports.OrderEventPublisher
	producer    *kafka.Producer
	issuer      *token.Issuer
	logger      *logrus.Logger
}

// NewCompositionRoot assembles the shared dependencies. The Kafka producer
// is only created when brokers are configured; without it order events are
// simply not published.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *logrus.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		geoResolver: viacep.NewClient(config.ViaCEPBaseURL, config.ViaCEPTimeout),
		pricer:      services.NewOrderPricer(),
		issuer:      token.NewIssuer(config.JWTSecret, config.JWTTTL),
		logger:      logger,
	}

	if len(config.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(config.KafkaBrokers, logger)
		if err != nil {
			return nil, err
		}
		root.producer = producer
		root.publisher = producer
	}

	return root, nil
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() error {
	if c.producer != nil {
		return c.producer.Close()
	}
	return nil
}

// TokenIssuer returns the shared JWT issuer, used both to sign tokens on
// login and to verify them on secured routes.
func (c *CompositionRoot) TokenIssuer() *token.Issuer {
	return c.issuer
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.geoResolver, c.pricer, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCreateCarCommandHandler() commands.CreateCarCommandHandler {
	return commands.NewCreateCarCommandHandler(c.carUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCarCommandHandler() commands.UpdateCarCommandHandler {
	return commands.NewUpdateCarCommandHandler(c.carUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCarCommandHandler() commands.DeleteCarCommandHandler {
	return commands.NewDeleteCarCommandHandler(c.carUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() commands.LoginUserCommandHandler {
	return commands.NewLoginUserCommandHandler(c.userUoWFactory(), c.issuer)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarByIDQueryHandler() queries.GetCarByIDQueryHandler {
	return queries.NewGetCarByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCarsQueryHandler() queries.ListCarsQueryHandler {
	return queries.NewListCarsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerByIDQueryHandler() queries.GetCustomerByIDQueryHandler {
	return queries.NewGetCustomerByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserByIDQueryHandler() queries.GetUserByIDQueryHandler {
	return queries.NewGetUserByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	overdueJob := jobs.NewOverdueOrdersJob(
		c.CreateGetOverdueOrdersQueryHandler(),
		config.OverdueCheckSpec,
		c.logger,
	)
	return jobs.NewJobManager(overdueJob)
}

func (c *CompositionRoot) carUoWFactory() commands.CarUoWFactory {
	return FuncCarUoWFactory(func() commands.CarUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCarUoWFactory func() commands.CarUoW

func (f FuncCarUoWFactory) Create() commands.CarUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
