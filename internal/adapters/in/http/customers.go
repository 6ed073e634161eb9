package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
)

// CreateCustomer registers a customer.
func (s *Server) CreateCustomer(c echo.Context) error {
	var request customerRequest
	if err := c.Bind(&request); err != nil {
		return writeBindError(c)
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(
		customerID,
		request.Name,
		request.DateOfBirth,
		request.CPF,
		request.Email,
		request.Phone,
	)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.CreateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: customerID.String()})
}

// UpdateCustomer replaces the customer's personal data.
func (s *Server) UpdateCustomer(c echo.Context) error {
	customerID, err := parseUUIDParam(c, "customerID")
	if err != nil {
		return writeError(c, err)
	}

	var request customerRequest
	if err := c.Bind(&request); err != nil {
		return writeBindError(c)
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID,
		request.Name,
		request.DateOfBirth,
		request.CPF,
		request.Email,
		request.Phone,
	)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteCustomer soft-deletes a customer.
func (s *Server) DeleteCustomer(c echo.Context) error {
	customerID, err := parseUUIDParam(c, "customerID")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.DeleteCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCustomer returns one customer.
func (s *Server) GetCustomer(c echo.Context) error {
	customerID, err := parseUUIDParam(c, "customerID")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetCustomerByIDQuery(customerID)
	if err != nil {
		return writeError(c, err)
	}

	response, err := s.handlers.GetCustomer.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, customerDetailPayload(response))
}

// ListCustomers returns a page of customers filtered by name and CPF.
func (s *Server) ListCustomers(c echo.Context) error {
	pagination, err := parsePagination(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewListCustomersQuery(
		optionalQuery(c, "name"),
		optionalQuery(c, "cpf"),
		c.QueryParam("sortBy"),
		pagination,
	)
	if err != nil {
		return writeError(c, err)
	}

	response, err := s.handlers.ListCustomers.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	payload := listPayload[customerDetail]{
		Data:        make([]customerDetail, 0, len(response.Customers)),
		Total:       response.Total,
		Pages:       response.Pages,
		CurrentPage: response.CurrentPage,
	}
	for _, summary := range response.Customers {
		payload.Data = append(payload.Data, customerDetailPayload(summary))
	}

	return c.JSON(http.StatusOK, payload)
}

type customerDetail struct {
	customerPayload
	DateOfBirth time.Time `json:"dateOfBirth"`
}

func customerDetailPayload(response queries.GetCustomerByIDQueryResponse) customerDetail {
	return customerDetail{
		customerPayload: customerPayload{
			ID:    response.ID.String(),
			Name:  response.Name,
			CPF:   response.CPF,
			Email: response.Email,
			Phone: response.Phone,
		},
		DateOfBirth: response.DateOfBirth,
	}
}
