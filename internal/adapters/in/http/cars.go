package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
)

// CreateCar registers a car in the fleet.
func (s *Server) CreateCar(c echo.Context) error {
	var request carRequest
	if err := c.Bind(&request); err != nil {
		return writeBindError(c)
	}

	carID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarCommand(
		carID,
		request.Plate,
		request.Brand,
		request.Model,
		request.Km,
		request.Year,
		request.DailyPrice,
		request.Items,
	)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.CreateCar.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: carID.String()})
}

// UpdateCar replaces the car's attributes, status and accessory items.
func (s *Server) UpdateCar(c echo.Context) error {
	carID, err := parseUUIDParam(c, "carID")
	if err != nil {
		return writeError(c, err)
	}

	var request carRequest
	if err := c.Bind(&request); err != nil {
		return writeBindError(c)
	}

	cmd, err := commands.NewUpdateCarCommand(
		carID,
		request.Plate,
		request.Brand,
		request.Model,
		request.Km,
		request.Year,
		request.DailyPrice,
		request.Status,
		request.Items,
	)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateCar.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteCar soft-deletes a car so it no longer shows up in listings.
func (s *Server) DeleteCar(c echo.Context) error {
	carID, err := parseUUIDParam(c, "carID")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteCarCommand(carID)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.DeleteCar.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCar returns one car with its accessory items.
func (s *Server) GetCar(c echo.Context) error {
	carID, err := parseUUIDParam(c, "carID")
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetCarByIDQuery(carID)
	if err != nil {
		return writeError(c, err)
	}

	response, err := s.handlers.GetCar.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, carDetailPayload(response))
}

// ListCars returns a page of cars filtered by status and brand prefix.
func (s *Server) ListCars(c echo.Context) error {
	pagination, err := parsePagination(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewListCarsQuery(
		optionalQuery(c, "status"),
		optionalQuery(c, "brand"),
		c.QueryParam("sortBy"),
		pagination,
	)
	if err != nil {
		return writeError(c, err)
	}

	response, err := s.handlers.ListCars.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	payload := listPayload[carPayload]{
		Data:        make([]carPayload, 0, len(response.Cars)),
		Total:       response.Total,
		Pages:       response.Pages,
		CurrentPage: response.CurrentPage,
	}
	for _, summary := range response.Cars {
		payload.Data = append(payload.Data, carDetailPayload(summary))
	}

	return c.JSON(http.StatusOK, payload)
}

func carDetailPayload(response queries.GetCarByIDQueryResponse) carPayload {
	return carPayload{
		ID:         response.ID.String(),
		Plate:      response.Plate,
		Brand:      response.Brand,
		Model:      response.Model,
		Km:         response.Km,
		Year:       response.Year,
		DailyPrice: response.DailyPrice,
		Status:     response.Status,
		Items:      response.Items,
	}
}
