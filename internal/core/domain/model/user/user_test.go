package user_test

import (
	"testing"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/user"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Admin", "admin@example.com", "$2a$10$hash")
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should create user with all valid parameters", func(t *testing.T) {
		u, err := user.NewUser(id, "Admin", "Admin@Example.com", "$2a$10$hash")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "Admin", u.Name())
		assert.Equal(t, "admin@example.com", u.Email())
		assert.Equal(t, "$2a$10$hash", u.PasswordHash())
		assert.False(t, u.IsDeleted())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := user.NewUser(id, "", "admin@example.com", "$2a$10$hash")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		_, err := user.NewUser(id, "Admin", "admin", "$2a$10$hash")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with empty password hash", func(t *testing.T) {
		_, err := user.NewUser(id, "Admin", "admin@example.com", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUser_Update(t *testing.T) {
	t.Run("replaces name and email", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.Update("Root", "root@example.com"))
		assert.Equal(t, "Root", u.Name())
		assert.Equal(t, "root@example.com", u.Email())
	})

	t.Run("rejects updating a deleted user", func(t *testing.T) {
		u := newUser(t)
		require.NoError(t, u.Delete())

		require.ErrorIs(t, u.Update("Root", "root@example.com"), errs.ErrPreconditionFailed)
	})
}

func TestUser_ChangePasswordHash(t *testing.T) {
	t.Run("replaces the stored hash", func(t *testing.T) {
		u := newUser(t)

		require.NoError(t, u.ChangePasswordHash("$2a$10$other"))
		assert.Equal(t, "$2a$10$other", u.PasswordHash())
	})

	t.Run("rejects an empty hash", func(t *testing.T) {
		u := newUser(t)

		require.ErrorIs(t, u.ChangePasswordHash(""), errs.ErrValueIsRequired)
	})
}

func TestUser_Delete(t *testing.T) {
	u := newUser(t)

	require.NoError(t, u.Delete())
	assert.True(t, u.IsDeleted())
	require.ErrorIs(t, u.Delete(), errs.ErrPreconditionFailed)
}

func TestRestoreUser(t *testing.T) {
	u, err := user.RestoreUser(kernel.NewUUID(), "Admin", "admin@example.com", "$2a$10$hash", true)

	require.NoError(t, err)
	assert.True(t, u.IsDeleted())
}
