// Package viacep implements the GeoResolver port against the public ViaCEP
// HTTP API, which maps a Brazilian postal code to its city and state.
package viacep

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

// Client resolves postal codes through ViaCEP. All requests share a bounded
// timeout; a slow or failing service must reject the lookup, never hang the
// calling request.
type Client struct {
	http *resty.Client
}

// NewClient creates a ViaCEP client. baseURL is normally
// "https://viacep.com.br" and is overridable for tests.
func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{http: httpClient}
}

// cepResponse mirrors the ViaCEP payload. The service reports an unknown
// postal code with an "erro" field instead of a non-200 status; the field
// has been observed both as a boolean and as a string, so it is kept raw.
type cepResponse struct {
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       any    `json:"erro"`
}

// Resolve looks up the postal code and returns the city and state it belongs to.
func (c *Client) Resolve(ctx context.Context, cep kernel.CEP) (ports.Address, error) {
	if err := cep.Validate(); err != nil {
		return ports.Address{}, err
	}

	var payload cepResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(fmt.Sprintf("/ws/%s/json/", cep.String()))
	if err != nil {
		return ports.Address{}, errs.NewDependencyUnavailableErrorWithCause("viacep", err)
	}

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return ports.Address{}, errs.NewValueIsInvalidError("cep")
	case resp.StatusCode() != http.StatusOK:
		return ports.Address{}, errs.NewDependencyUnavailableErrorWithCause("viacep",
			fmt.Errorf("unexpected status %d", resp.StatusCode()))
	}

	if isErrorFlagSet(payload.Erro) {
		return ports.Address{}, errs.NewObjectNotFoundError("cep", cep.String())
	}

	return ports.Address{
		City:   payload.Localidade,
		Region: payload.UF,
	}, nil
}

func isErrorFlagSet(flag any) bool {
	switch v := flag.(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "false"
	default:
		return false
	}
}
