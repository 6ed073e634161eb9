package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
)

// Address is the result of a postal-code lookup: the city and the two-letter
// state code the freight fee is derived from.
type Address struct {
	City   string
	Region string
}

// GeoResolver resolves a postal code into an address via an external service.
// Implementations must bound the call with a timeout; an unavailable or
// failing service surfaces as a DependencyUnavailableError, and an unknown
// postal code as an ObjectNotFoundError.
type GeoResolver interface {
	Resolve(ctx context.Context, cep kernel.CEP) (Address, error)
}
