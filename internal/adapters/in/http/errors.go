package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/pkg/errs"
)

// errorResponse is the uniform error payload.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps application errors onto status codes. Unclassified errors
// become a 500 with a generic message so internals never leak to clients.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrPreconditionFailed):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrDependencyUnavailable):
		status = http.StatusBadGateway
		message = err.Error()
	}

	return c.JSON(status, errorResponse{Code: status, Message: message})
}

// writeBindError reports a malformed request body.
func writeBindError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
	})
}
