// Package http exposes the rental API over HTTP. Handlers translate requests
// into commands and queries, and map application errors onto status codes.
// Every route except login and user registration sits behind JWT auth.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/pkg/token"
)

// TokenVerifier checks access tokens presented by clients.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	CancelOrder commands.CancelOrderCommandHandler

	CreateCar commands.CreateCarCommandHandler
	UpdateCar commands.UpdateCarCommandHandler
	DeleteCar commands.DeleteCarCommandHandler

	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler

	CreateUser commands.CreateUserCommandHandler
	UpdateUser commands.UpdateUserCommandHandler
	DeleteUser commands.DeleteUserCommandHandler
	LoginUser  commands.LoginUserCommandHandler

	GetOrder   queries.GetOrderByIDQueryHandler
	ListOrders queries.ListOrdersQueryHandler

	GetCar   queries.GetCarByIDQueryHandler
	ListCars queries.ListCarsQueryHandler

	GetCustomer   queries.GetCustomerByIDQueryHandler
	ListCustomers queries.ListCustomersQueryHandler

	GetUser   queries.GetUserByIDQueryHandler
	ListUsers queries.ListUsersQueryHandler
}

// Server routes HTTP requests to the application layer.
type Server struct {
	handlers Handlers
	verifier TokenVerifier
}

// NewServer creates the HTTP server.
func NewServer(handlers Handlers, verifier TokenVerifier) *Server {
	return &Server{
		handlers: handlers,
		verifier: verifier,
	}
}

// RegisterRoutes mounts the API under /api/v1. Login and user registration
// are reachable without a token so the first account can be created.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/login", s.Login)
	api.POST("/users", s.CreateUser)

	secured := api.Group("", s.requireToken)

	secured.GET("/users", s.ListUsers)
	secured.GET("/users/:userID", s.GetUser)
	secured.PUT("/users/:userID", s.UpdateUser)
	secured.DELETE("/users/:userID", s.DeleteUser)

	secured.POST("/customers", s.CreateCustomer)
	secured.GET("/customers", s.ListCustomers)
	secured.GET("/customers/:customerID", s.GetCustomer)
	secured.PUT("/customers/:customerID", s.UpdateCustomer)
	secured.DELETE("/customers/:customerID", s.DeleteCustomer)

	secured.POST("/cars", s.CreateCar)
	secured.GET("/cars", s.ListCars)
	secured.GET("/cars/:carID", s.GetCar)
	secured.PUT("/cars/:carID", s.UpdateCar)
	secured.DELETE("/cars/:carID", s.DeleteCar)

	secured.POST("/orders", s.CreateOrder)
	secured.GET("/orders", s.ListOrders)
	secured.GET("/orders/:orderID", s.GetOrder)
	secured.PUT("/orders/:orderID", s.UpdateOrder)
	secured.DELETE("/orders/:orderID", s.DeleteOrder)
}
