package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/user"
	"rental/internal/pkg/errs"
)

func newTestUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u, err := user.NewUser(kernel.NewUUID(), "Admin", "admin@example.com", string(hash))
	require.NoError(t, err)
	return u
}

func TestLoginUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := newTestUser(t, "s3cret!")

	cmd, err := commands.NewLoginUserCommand("Admin@Example.com ", "s3cret!")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUnitOfWork)
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("GetByEmail", ctx, "admin@example.com").Return(existing, nil).Once()

	issuer := new(MockTokenIssuer)
	issuer.On("Issue", existing.ID().String(), "admin@example.com").
		Return("signed-token", nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginUserCommandHandler(factory, issuer)
	token, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	issuer.AssertExpectations(t)
}

func TestLoginUserCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	existing := newTestUser(t, "s3cret!")

	cmd, err := commands.NewLoginUserCommand("admin@example.com", "wrong")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUnitOfWork)
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("GetByEmail", ctx, "admin@example.com").Return(existing, nil).Once()

	issuer := new(MockTokenIssuer)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginUserCommandHandler(factory, issuer)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestLoginUserCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewLoginUserCommand("ghost@example.com", "whatever")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUnitOfWork)
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("GetByEmail", ctx, "ghost@example.com").
		Return(nil, errs.NewObjectNotFoundError("user", "ghost@example.com")).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginUserCommandHandler(factory, new(MockTokenIssuer))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestNewLoginUserCommand_MissingCredentials(t *testing.T) {
	_, err := commands.NewLoginUserCommand("", "pass")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewLoginUserCommand("a@b.com", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
