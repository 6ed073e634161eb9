package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
)

// CreateOrder opens a rental order for a customer and car.
func (s *Server) CreateOrder(c echo.Context) error {
	var request createOrderRequest
	if err := c.Bind(&request); err != nil {
		return writeBindError(c)
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return writeError(c, err)
	}
	carID, err := kernel.UUIDFromString(request.CarID)
	if err != nil {
		return writeError(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, carID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// UpdateOrder patches an order: rental period, delivery address and status
// transitions all go through here.
func (s *Server) UpdateOrder(c echo.Context) error {
	orderID, err := parseUUIDParam(c, "orderID")
	if err != nil {
		return writeError(c, err)
	}

	var request updateOrderRequest
	if err := c.Bind(&request); err != nil {
		return writeBindError(c)
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID,
		request.StartDateTime,
		request.EndDateTime,
		request.CEP,
		request.Status,
	)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteOrder cancels an open order.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := parseUUIDParam(c, "orderID")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOrder returns one order with its customer and car details.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := parseUUIDParam(c, "orderID")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return writeError(c, err)
	}

	response, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderDetailPayload(response))
}

// ListOrders returns a page of orders filtered by status, customer CPF and
// creation date range.
func (s *Server) ListOrders(c echo.Context) error {
	pagination, err := parsePagination(c)
	if err != nil {
		return writeError(c, err)
	}

	createdFrom, err := optionalTimeQuery(c, "createdFrom")
	if err != nil {
		return writeError(c, err)
	}
	createdTo, err := optionalTimeQuery(c, "createdTo")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewListOrdersQuery(
		optionalQuery(c, "status"),
		optionalQuery(c, "cpf"),
		createdFrom,
		createdTo,
		c.QueryParam("sortBy"),
		pagination,
	)
	if err != nil {
		return writeError(c, err)
	}

	response, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	payload := listPayload[orderSummaryPayload]{
		Data:        make([]orderSummaryPayload, 0, len(response.Orders)),
		Total:       response.Total,
		Pages:       response.Pages,
		CurrentPage: response.CurrentPage,
	}
	for _, summary := range response.Orders {
		payload.Data = append(payload.Data, orderSummaryPayload{
			ID:            summary.ID.String(),
			Status:        summary.Status,
			StartDateTime: summary.StartDateTime,
			EndDateTime:   summary.EndDateTime,
			TotalValue:    summary.TotalValue,
			CreatedAt:     summary.CreatedAt,
			Customer:      customerSummaryPayload(summary.Customer),
		})
	}

	return c.JSON(http.StatusOK, payload)
}

func orderDetailPayload(response queries.GetOrderByIDQueryResponse) orderPayload {
	customer := customerSummaryPayload(response.Customer)
	car := carPayload{
		ID:         response.Car.ID.String(),
		Plate:      response.Car.Plate,
		Brand:      response.Car.Brand,
		Model:      response.Car.Model,
		DailyPrice: response.Car.DailyPrice,
		Items:      response.Car.Items,
	}

	return orderPayload{
		ID:               response.ID.String(),
		Status:           response.Status,
		CEP:              response.CEP,
		City:             response.City,
		Region:           response.Region,
		StartDateTime:    response.StartDateTime,
		EndDateTime:      response.EndDateTime,
		RentalFee:        response.RentalFee,
		Fine:             response.Fine,
		TotalValue:       response.TotalValue,
		CancellationDate: response.CancellationDate,
		ClosingDate:      response.ClosingDate,
		CreatedAt:        response.CreatedAt,
		Customer:         &customer,
		Car:              &car,
	}
}

func customerSummaryPayload(summary queries.CustomerSummary) customerPayload {
	return customerPayload{
		ID:    summary.ID.String(),
		Name:  summary.Name,
		CPF:   summary.CPF,
		Email: summary.Email,
		Phone: summary.Phone,
	}
}
