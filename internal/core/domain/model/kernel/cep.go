package kernel

import (
	"fmt"
	"strings"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// cepLength is the number of digits in a Brazilian postal code.
const cepLength = 8

// ErrCEPIsNotConstructed is returned when attempting to use an improperly initialized CEP.
// CEPs must be created using the NewCEP constructor to ensure validity.
var ErrCEPIsNotConstructed = errs.NewValueIsRequiredError("CEP must be created via NewCEP constructor")

// CEP represents a validated Brazilian postal code.
// CEP is an immutable value object holding exactly eight digits; the optional
// "12345-678" hyphenated input form is normalized to its digit-only form.
// The zero value of CEP is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	cep, err := kernel.NewCEP("01310-100")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(cep) // Output: 01310100
type CEP struct { //nolint:recvcheck //using for validation
	digits string
	guard  guard.ConstructorGuard
}

// NewCEP creates a CEP from its textual form.
// Accepts eight digits with an optional hyphen before the final three
// ("01310100" or "01310-100"). Returns an error for any other shape.
func NewCEP(value string) (CEP, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), "-", "")
	if normalized == "" {
		return CEP{}, errs.NewValueIsRequiredError("cep")
	}

	if len(normalized) != cepLength {
		return CEP{}, errs.NewValueIsInvalidErrorWithCause("cep",
			fmt.Errorf("%q does not have %d digits", value, cepLength))
	}

	for _, r := range normalized {
		if r < '0' || r > '9' {
			return CEP{}, errs.NewValueIsInvalidErrorWithCause("cep",
				fmt.Errorf("%q contains a non-digit character", value))
		}
	}

	return CEP{
		digits: normalized,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// String returns the digit-only form of the postal code.
func (c CEP) String() string {
	return c.digits
}

// Validate checks if the CEP is properly constructed.
// Returns ErrCEPIsNotConstructed for zero-value instances.
func (c CEP) Validate() error {
	return c.guard.Validate(ErrCEPIsNotConstructed)
}

// IsEqual compares two CEPs by their digits.
func (c CEP) IsEqual(other CEP) bool {
	return c.digits == other.digits
}
