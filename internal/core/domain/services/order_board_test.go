package services_test

import (
	"testing"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, customer string) order.Order {
	t.Helper()
	item, err := menu.NewMenuItem(menu.KindCoffee)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), item, customer)
	require.NoError(t, err)
	return o
}

func TestOrderBoard_ApplyOrdered(t *testing.T) {
	t.Run("should add new order to the board", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")

		applied, err := board.Apply(order.NewOrderedEvent(o))

		require.NoError(t, err)
		assert.True(t, applied.IsEqual(o))

		snapshot := board.Snapshot()
		require.Len(t, snapshot.Ordered, 1)
		assert.True(t, snapshot.Ordered[0].IsEqual(o))
		assert.Empty(t, snapshot.InProgress)
		assert.Empty(t, snapshot.Completed)
		assert.Empty(t, snapshot.Canceled)
	})

	t.Run("should reject duplicate submission", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")

		_, err := board.Apply(order.NewOrderedEvent(o))
		require.NoError(t, err)

		_, err = board.Apply(order.NewOrderedEvent(o))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "already on the board")
	})

	t.Run("should reject zero value snapshot", func(t *testing.T) {
		board := services.NewOrderBoard()

		_, err := board.Apply(order.NewOrderedEvent(order.Order{}))

		require.Error(t, err)
	})
}

func TestOrderBoard_ApplyStarted(t *testing.T) {
	t.Run("should move order to InProgress", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")
		_, err := board.Apply(order.NewOrderedEvent(o))
		require.NoError(t, err)

		claimed, err := o.Start(kernel.NewUUID())
		require.NoError(t, err)

		applied, err := board.Apply(order.NewStartedEvent(claimed))

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, applied.Status())

		snapshot := board.Snapshot()
		assert.Empty(t, snapshot.Ordered)
		require.Len(t, snapshot.InProgress, 1)
	})

	t.Run("should reject start for unknown order", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")
		claimed, _ := o.Start(kernel.NewUUID())

		_, err := board.Apply(order.NewStartedEvent(claimed))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject double start", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")
		_, err := board.Apply(order.NewOrderedEvent(o))
		require.NoError(t, err)

		claimed, _ := o.Start(kernel.NewUUID())
		_, err = board.Apply(order.NewStartedEvent(claimed))
		require.NoError(t, err)

		otherClaim, _ := o.Start(kernel.NewUUID())
		_, err = board.Apply(order.NewStartedEvent(otherClaim))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "only Ordered orders can be started")
	})
}

func TestOrderBoard_ApplyCompleted(t *testing.T) {
	t.Run("should complete claimed order", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")
		workerID := kernel.NewUUID()

		_, err := board.Apply(order.NewOrderedEvent(o))
		require.NoError(t, err)
		claimed, _ := o.Start(workerID)
		_, err = board.Apply(order.NewStartedEvent(claimed))
		require.NoError(t, err)

		done, _ := claimed.Complete()
		applied, err := board.Apply(order.NewCompletedEvent(done))

		require.NoError(t, err)
		assert.Equal(t, order.Completed, applied.Status())
		assert.True(t, applied.Worker().IsEqual(workerID))

		snapshot := board.Snapshot()
		require.Len(t, snapshot.Completed, 1)
		assert.Empty(t, snapshot.InProgress)
	})

	t.Run("should reject completion by a different worker", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")

		_, err := board.Apply(order.NewOrderedEvent(o))
		require.NoError(t, err)
		claimed, _ := o.Start(kernel.NewUUID())
		_, err = board.Apply(order.NewStartedEvent(claimed))
		require.NoError(t, err)

		// A second claim snapshot that never went through the board.
		impostorClaim, _ := o.Start(kernel.NewUUID())
		done, _ := impostorClaim.Complete()
		_, err = board.Apply(order.NewCompletedEvent(done))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is claimed by worker")
	})

	t.Run("should reject completion of unclaimed order", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")
		_, err := board.Apply(order.NewOrderedEvent(o))
		require.NoError(t, err)

		claimed, _ := o.Start(kernel.NewUUID())
		done, _ := claimed.Complete()
		_, err = board.Apply(order.NewCompletedEvent(done))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "only InProgress orders can be completed")
	})

	t.Run("late completion after completion is a rejected no-op", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")
		workerID := kernel.NewUUID()

		_, err := board.Apply(order.NewOrderedEvent(o))
		require.NoError(t, err)
		claimed, _ := o.Start(workerID)
		_, err = board.Apply(order.NewStartedEvent(claimed))
		require.NoError(t, err)
		done, _ := claimed.Complete()
		_, err = board.Apply(order.NewCompletedEvent(done))
		require.NoError(t, err)

		_, err = board.Apply(order.NewCompletedEvent(done))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already in terminal state")
	})
}

func TestOrderBoard_ApplyCanceled(t *testing.T) {
	t.Run("should record audit entry and reopen the order", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")

		_, err := board.Apply(order.NewOrderedEvent(o))
		require.NoError(t, err)
		claimed, _ := o.Start(kernel.NewUUID())
		_, err = board.Apply(order.NewStartedEvent(claimed))
		require.NoError(t, err)

		canceled, _ := claimed.Cancel()
		applied, err := board.Apply(order.NewCanceledEvent(canceled))

		require.NoError(t, err)
		assert.Equal(t, order.Ordered, applied.Status())
		assert.Nil(t, applied.Worker())

		snapshot := board.Snapshot()
		require.Len(t, snapshot.Ordered, 1, "canceled order should reappear as dispatchable")
		assert.Nil(t, snapshot.Ordered[0].Worker())
		require.Len(t, snapshot.Canceled, 1, "cancellation should be kept for audit")
		assert.Equal(t, order.Canceled, snapshot.Canceled[0].Status())
		assert.Empty(t, snapshot.InProgress)
	})

	t.Run("late completion after cancellation is a rejected no-op", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")

		_, err := board.Apply(order.NewOrderedEvent(o))
		require.NoError(t, err)
		claimed, _ := o.Start(kernel.NewUUID())
		_, err = board.Apply(order.NewStartedEvent(claimed))
		require.NoError(t, err)
		canceled, _ := claimed.Cancel()
		_, err = board.Apply(order.NewCanceledEvent(canceled))
		require.NoError(t, err)

		// The stopped worker's completion arrives after its cancellation.
		done, _ := claimed.Complete()
		_, err = board.Apply(order.NewCompletedEvent(done))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "only InProgress orders can be completed")

		// Order is still dispatchable.
		snapshot := board.Snapshot()
		require.Len(t, snapshot.Ordered, 1)
	})

	t.Run("should reject cancellation of dispatchable order", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")
		_, err := board.Apply(order.NewOrderedEvent(o))
		require.NoError(t, err)

		claimed, _ := o.Start(kernel.NewUUID())
		canceled, _ := claimed.Cancel()
		// Cancellation arrives without a preceding start.
		_, err = board.Apply(order.NewCanceledEvent(canceled))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "only InProgress orders can be canceled")
	})
}

func TestOrderBoard_Get(t *testing.T) {
	t.Run("should return the live snapshot", func(t *testing.T) {
		board := services.NewOrderBoard()
		o := newOrder(t, "Michael Scott")
		_, err := board.Apply(order.NewOrderedEvent(o))
		require.NoError(t, err)

		got, err := board.Get(o.ID())

		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
	})

	t.Run("should report unknown ids", func(t *testing.T) {
		board := services.NewOrderBoard()

		_, err := board.Get(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderBoard_Snapshot(t *testing.T) {
	t.Run("should preserve arrival order within partitions", func(t *testing.T) {
		board := services.NewOrderBoard()
		first := newOrder(t, "First")
		second := newOrder(t, "Second")
		third := newOrder(t, "Third")

		for _, o := range []order.Order{first, second, third} {
			_, err := board.Apply(order.NewOrderedEvent(o))
			require.NoError(t, err)
		}

		snapshot := board.Snapshot()

		require.Len(t, snapshot.Ordered, 3)
		assert.Equal(t, "First", snapshot.Ordered[0].Customer())
		assert.Equal(t, "Second", snapshot.Ordered[1].Customer())
		assert.Equal(t, "Third", snapshot.Ordered[2].Customer())
	})

	t.Run("empty board yields empty partitions", func(t *testing.T) {
		snapshot := services.NewOrderBoard().Snapshot()

		assert.Empty(t, snapshot.Ordered)
		assert.Empty(t, snapshot.InProgress)
		assert.Empty(t, snapshot.Completed)
		assert.Empty(t, snapshot.Canceled)
	})
}
