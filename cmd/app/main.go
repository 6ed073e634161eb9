package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rental/cmd"
	httpin "rental/internal/adapters/in/http"
	"rental/internal/migrations"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// A missing .env is fine in containerized deployments where the
	// environment is set directly.
	if err := godotenv.Load(".env"); err != nil {
		logger.WithError(err).Debug("No .env file loaded")
	}

	config, err := cmd.ReadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.WithError(err).Fatal("Failed to access database handle")
	}
	if err := migrations.Up(sqlDB); err != nil {
		logger.WithError(err).Fatal("Failed to run migrations")
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to assemble application")
	}
	defer func() {
		if err := root.Close(); err != nil {
			logger.WithError(err).Error("Failed to close adapters")
		}
	}()

	jobManager := root.CreateJobManager(config)
	if err := jobManager.StartAll(); err != nil {
		logger.WithError(err).Fatal("Failed to start jobs")
	}
	defer jobManager.StopAll()

	server := httpin.NewServer(buildHandlers(root), root.TokenIssuer())

	e := echo.New()
	e.HideBanner = true
	server.RegisterRoutes(e)

	logger.WithField("port", config.HTTPPort).Info("Starting HTTP server")
	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil {
		logger.WithError(err).Fatal("HTTP server stopped")
	}
}

func buildHandlers(root *cmd.CompositionRoot) httpin.Handlers {
	return httpin.Handlers{
		CreateOrder: root.CreateCreateOrderCommandHandler(),
		UpdateOrder: root.CreateUpdateOrderCommandHandler(),
		CancelOrder: root.CreateCancelOrderCommandHandler(),

		CreateCar: root.CreateCreateCarCommandHandler(),
		UpdateCar: root.CreateUpdateCarCommandHandler(),
		DeleteCar: root.CreateDeleteCarCommandHandler(),

		CreateCustomer: root.CreateCreateCustomerCommandHandler(),
		UpdateCustomer: root.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer: root.CreateDeleteCustomerCommandHandler(),

		CreateUser: root.CreateCreateUserCommandHandler(),
		UpdateUser: root.CreateUpdateUserCommandHandler(),
		DeleteUser: root.CreateDeleteUserCommandHandler(),
		LoginUser:  root.CreateLoginUserCommandHandler(),

		GetOrder:   root.CreateGetOrderByIDQueryHandler(),
		ListOrders: root.CreateListOrdersQueryHandler(),

		GetCar:   root.CreateGetCarByIDQueryHandler(),
		ListCars: root.CreateListCarsQueryHandler(),

		GetCustomer:   root.CreateGetCustomerByIDQueryHandler(),
		ListCustomers: root.CreateListCustomersQueryHandler(),

		GetUser:   root.CreateGetUserByIDQueryHandler(),
		ListUsers: root.CreateListUsersQueryHandler(),
	}
}
