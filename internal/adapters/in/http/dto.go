package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

type createOrderRequest struct {
	CustomerID string `json:"customerId"`
	CarID      string `json:"carId"`
}

type updateOrderRequest struct {
	StartDateTime *time.Time `json:"startDateTime"`
	EndDateTime   *time.Time `json:"endDateTime"`
	CEP           *string    `json:"cep"`
	Status        *string    `json:"status"`
}

type carRequest struct {
	Plate      string          `json:"plate"`
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	Km         int             `json:"km"`
	Year       int             `json:"year"`
	DailyPrice decimal.Decimal `json:"dailyPrice"`
	Status     string          `json:"status"`
	Items      []string        `json:"items"`
}

type customerRequest struct {
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	CPF         string    `json:"cpf"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type customerPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type carPayload struct {
	ID         string          `json:"id"`
	Plate      string          `json:"plate"`
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	Km         int             `json:"km,omitempty"`
	Year       int             `json:"year,omitempty"`
	DailyPrice decimal.Decimal `json:"dailyPrice"`
	Status     string          `json:"status,omitempty"`
	Items      []string        `json:"items"`
}

type orderPayload struct {
	ID               string           `json:"id"`
	Status           string           `json:"status"`
	CEP              *string          `json:"cep,omitempty"`
	City             *string          `json:"city,omitempty"`
	Region           *string          `json:"region,omitempty"`
	StartDateTime    *time.Time       `json:"startDateTime,omitempty"`
	EndDateTime      *time.Time       `json:"endDateTime,omitempty"`
	RentalFee        decimal.Decimal  `json:"rentalFee"`
	Fine             *decimal.Decimal `json:"fine,omitempty"`
	TotalValue       decimal.Decimal  `json:"totalValue"`
	CancellationDate *time.Time       `json:"cancellationDate,omitempty"`
	ClosingDate      *time.Time       `json:"closingDate,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	Customer         *customerPayload `json:"customer,omitempty"`
	Car              *carPayload      `json:"car,omitempty"`
}

type orderSummaryPayload struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	StartDateTime *time.Time      `json:"startDateTime,omitempty"`
	EndDateTime   *time.Time      `json:"endDateTime,omitempty"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	CreatedAt     time.Time       `json:"createdAt"`
	Customer      customerPayload `json:"customer"`
}

type listPayload[T any] struct {
	Data        []T   `json:"data"`
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"currentPage"`
}

// parseUUIDParam reads a UUID path parameter.
func parseUUIDParam(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}

// parsePagination reads the page/size query parameters, leaving zero values
// for the query layer's defaults.
func parsePagination(c echo.Context) (queries.Pagination, error) {
	page, err := parseIntQuery(c, "page")
	if err != nil {
		return queries.Pagination{}, err
	}
	size, err := parseIntQuery(c, "size")
	if err != nil {
		return queries.Pagination{}, err
	}

	return queries.NewPagination(page, size)
}

func parseIntQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidError(name)
	}
	return value, nil
}

// optionalQuery returns a query parameter, or nil when absent.
func optionalQuery(c echo.Context, name string) *string {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// optionalTimeQuery parses an RFC 3339 query parameter, or nil when absent.
func optionalTimeQuery(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidError(name)
	}
	return &parsed, nil
}
