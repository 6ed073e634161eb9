package commands

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"rental/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords, so callers cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginUserCommandHandler authenticates a user and issues a signed access
// token. Reads run outside a transaction.
type LoginUserCommandHandler struct {
	uowFactory UserUoWFactory
	issuer     TokenIssuer
}

// NewLoginUserCommandHandler creates a handler for user authentication.
func NewLoginUserCommandHandler(uowFactory UserUoWFactory, issuer TokenIssuer) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle verifies the credentials and returns a signed token on success.
func (h *LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	email := strings.ToLower(strings.TrimSpace(cmd.Email()))

	existing, err := uow.UserRepository().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(existing.PasswordHash()),
		[]byte(cmd.Password()),
	) != nil {
		return "", ErrInvalidCredentials
	}

	return h.issuer.Issue(existing.ID().String(), existing.Email())
}
