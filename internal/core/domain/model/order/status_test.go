package order_test

import (
	"fmt"
	"testing"

	"dinesmart/internal/core/domain/model/order"
	"dinesmart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edges is the complete status graph.
var edges = map[order.Status][]order.Status{
	order.Pending:       {order.Preparing, order.Cancelled},
	order.Preparing:     {order.ReadyForServe, order.Cancelled},
	order.ReadyForServe: {order.Served, order.Cancelled},
	order.Served:        {order.Paid},
}

func isEdge(from, to order.Status) bool {
	for _, s := range edges[from] {
		if s == to {
			return true
		}
	}
	return false
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Preparing))
		assert.Equal(t, 3, int(order.ReadyForServe))
		assert.Equal(t, 4, int(order.Served))
		assert.Equal(t, 5, int(order.Paid))
		assert.Equal(t, 6, int(order.Cancelled))
	})

	t.Run("AllStatuses lists every valid status once", func(t *testing.T) {
		all := order.AllStatuses()

		assert.Len(t, all, 6)
		for _, s := range all {
			require.NoError(t, s.Validate())
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		for _, status := range []order.Status{-1, 7, 100} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.True(t, errs.IsValidation(err))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "ReadyForServe", order.ReadyForServe.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every status", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "pending", "Delivered"} {
			_, err := order.ParseStatus(name)

			require.Error(t, err, name)
			assert.True(t, errs.IsValidation(err))
		}
	})
}

func TestStatus_Classification(t *testing.T) {
	t.Run("terminal statuses", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			terminal := s == order.Paid || s == order.Cancelled

			assert.Equal(t, terminal, s.IsTerminal(), s.String())
			assert.Equal(t, !terminal, s.IsActive(), s.String())
			if terminal {
				for _, next := range order.AllStatuses() {
					assert.False(t, s.CanTransitionTo(next), "%s -> %s", s, next)
				}
			}
		}
		assert.False(t, order.Unknown.IsActive())
	})

	t.Run("items can be added only while pending or preparing", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			expected := s == order.Pending || s == order.Preparing
			assert.Equal(t, expected, s.CanAddItems(), s.String())
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	candidates := append([]order.Status{order.Unknown}, order.AllStatuses()...)

	for _, from := range candidates {
		for _, to := range candidates {
			name := fmt.Sprintf("%s -> %s", from, to)
			t.Run(name, func(t *testing.T) {
				next, err := from.TransitionTo(to)

				if isEdge(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					assert.True(t, from.CanTransitionTo(to))
					return
				}

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, order.Unknown, next)
				assert.False(t, from.CanTransitionTo(to))
			})
		}
	}
}
