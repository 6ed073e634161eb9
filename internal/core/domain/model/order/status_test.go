package order_test

import (
	"testing"

	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("parses all literal tokens", func(t *testing.T) {
		cases := map[string]order.Status{
			"Open":      order.Open,
			"Approved":  order.Approved,
			"Closed":    order.Closed,
			"Cancelled": order.Cancelled,
		}

		for token, expected := range cases {
			status, err := order.ParseStatus(token)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		for _, token := range []string{"", "open", "Unknown", "Aprovado", "Done"} {
			_, err := order.ParseStatus(token)
			require.Error(t, err, token)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{order.Open, order.Approved, order.Closed, order.Cancelled} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range values fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Open", order.Open.String())
	assert.Equal(t, "Approved", order.Approved.String())
	assert.Equal(t, "Closed", order.Closed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("allowed transitions", func(t *testing.T) {
		allowed := []struct {
			from, to order.Status
		}{
			{order.Open, order.Approved},
			{order.Open, order.Cancelled},
			{order.Approved, order.Closed},
		}

		for _, tc := range allowed {
			next, err := tc.from.TransitionTo(tc.to)
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, next)
		}
	})

	t.Run("forbidden transitions fail with precondition error", func(t *testing.T) {
		forbidden := []struct {
			from, to order.Status
		}{
			{order.Open, order.Closed},
			{order.Approved, order.Cancelled},
			{order.Approved, order.Open},
			{order.Closed, order.Open},
			{order.Closed, order.Approved},
			{order.Closed, order.Cancelled},
			{order.Cancelled, order.Open},
			{order.Cancelled, order.Approved},
			{order.Cancelled, order.Closed},
		}

		for _, tc := range forbidden {
			_, err := tc.from.TransitionTo(tc.to)
			require.Error(t, err, "%s -> %s", tc.from, tc.to)
			require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		}
	})

	t.Run("transition to invalid status fails with invalid-value error", func(t *testing.T) {
		_, err := order.Open.TransitionTo(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Open.IsTerminal())
	assert.False(t, order.Approved.IsTerminal())
	assert.True(t, order.Closed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())
}
