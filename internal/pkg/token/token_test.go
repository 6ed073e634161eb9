package token_test

import (
	"testing"
	"time"

	"rental/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer(t *testing.T) {
	issuer := token.NewIssuer("secret", 10*time.Minute)

	t.Run("verifies a freshly issued token", func(t *testing.T) {
		signed, err := issuer.Issue("user-1", "admin@example.com")
		require.NoError(t, err)

		claims, err := issuer.Verify(signed)

		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "admin@example.com", claims.Email)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := token.NewIssuer("other-secret", 10*time.Minute)
		signed, err := other.Issue("user-1", "admin@example.com")
		require.NoError(t, err)

		_, err = issuer.Verify(signed)

		require.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := token.NewIssuer("secret", -time.Minute)
		signed, err := expired.Issue("user-1", "admin@example.com")
		require.NoError(t, err)

		_, err = issuer.Verify(signed)

		require.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := issuer.Verify("not-a-token")

		require.ErrorIs(t, err, token.ErrInvalidToken)
	})
}
