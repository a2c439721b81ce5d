package order_test

import (
	"fmt"
	"testing"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Ordered))
		assert.Equal(t, 2, int(order.InProgress))
		assert.Equal(t, 3, int(order.Completed))
		assert.Equal(t, 4, int(order.Canceled))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []order.Status{
			order.Unknown,
			order.Ordered,
			order.InProgress,
			order.Completed,
			order.Canceled,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Ordered,
			order.InProgress,
			order.Completed,
			order.Canceled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Ordered, "Ordered"},
			{order.InProgress, "InProgress"},
			{order.Completed, "Completed"},
			{order.Canceled, "Canceled"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				result := tc.status.String()
				assert.Equal(t, tc.expected, result)
			})
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			result := status.String()
			assert.Equal(t, "Unknown", result)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("only Completed is terminal", func(t *testing.T) {
		assert.True(t, order.Completed.IsTerminal())
		assert.False(t, order.Ordered.IsTerminal())
		assert.False(t, order.InProgress.IsTerminal())
		assert.False(t, order.Canceled.IsTerminal())
		assert.False(t, order.Unknown.IsTerminal())
	})
}

func TestStatus_Start(t *testing.T) {
	t.Run("should allow transition from Ordered to InProgress", func(t *testing.T) {
		newStatus, err := order.Ordered.Start()

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, newStatus)
	})

	t.Run("should reject transition from non-Ordered statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.InProgress,
			order.Completed,
			order.Canceled,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Start()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to start", status))
			})
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should allow transition from InProgress to Completed", func(t *testing.T) {
		newStatus, err := order.InProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, newStatus)
	})

	t.Run("should reject transition from non-InProgress statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Ordered,
			order.Completed,
			order.Canceled,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Complete()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to complete", status))
			})
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should allow transition from InProgress to Canceled", func(t *testing.T) {
		newStatus, err := order.InProgress.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Canceled, newStatus)
	})

	t.Run("should reject transition from non-InProgress statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Ordered,
			order.Completed,
			order.Canceled,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Cancel()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to cancel", status))
			})
		}
	})
}

func TestStatus_Reopen(t *testing.T) {
	t.Run("should allow transition from Canceled to Ordered", func(t *testing.T) {
		newStatus, err := order.Canceled.Reopen()

		require.NoError(t, err)
		assert.Equal(t, order.Ordered, newStatus)
	})

	t.Run("should reject transition from non-Canceled statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Ordered,
			order.InProgress,
			order.Completed,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Reopen()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to reopen", status))
			})
		}
	})
}

func TestStatus_FullLifecycle(t *testing.T) {
	t.Run("happy path reaches Completed", func(t *testing.T) {
		status := order.Ordered

		status, err := status.Start()
		require.NoError(t, err)

		status, err = status.Complete()
		require.NoError(t, err)

		assert.Equal(t, order.Completed, status)
		assert.True(t, status.IsTerminal())
	})

	t.Run("cancellation loops back to Ordered", func(t *testing.T) {
		status := order.Ordered

		status, err := status.Start()
		require.NoError(t, err)

		status, err = status.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Canceled, status)

		status, err = status.Reopen()
		require.NoError(t, err)
		assert.Equal(t, order.Ordered, status)
	})
}
