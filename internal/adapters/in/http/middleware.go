package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "authClaims"

// requireToken rejects requests without a valid bearer token and stores the
// verified claims on the request context.
func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		rawToken, found := strings.CutPrefix(header, "Bearer ")
		if !found || rawToken == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}

		claims, err := s.verifier.Verify(rawToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Code:    http.StatusUnauthorized,
				Message: "invalid or expired token",
			})
		}

		c.Set(claimsContextKey, claims)
		return next(c)
	}
}
