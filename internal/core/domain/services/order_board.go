package services

import (
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"coffeeshop/internal/pkg/errs"
)

// OrderBoard is a domain service owning the authoritative order set and
// applying lifecycle events to it in the order they are handed in.
//
// Key responsibilities:
//   - Verifying each event references a known order in a compatible state
//   - Replacing the stored snapshot on every valid transition
//   - Reopening canceled orders so they become dispatchable again
//   - Deriving the partitioned board view after any sequence of events
//
// Business rules:
//   - An event for an unknown order id is rejected, never applied
//   - An event for an order already in a terminal state is rejected
//   - A completion reported by a worker other than the claiming one is rejected
//   - Orders are never deleted; the board is replace-only
//
// OrderBoard is NOT safe for concurrent use. It must be owned by a single
// consumer (the ledger event loop), which serializes all mutations; that
// ownership is the concurrency model, not an implementation detail.
type OrderBoard struct {
	// live holds the current snapshot per order id
	live map[kernel.UUID]order.Order

	// arrival preserves submission order for stable board views and dispatch
	arrival []kernel.UUID

	// canceled is the audit trail of cancellation snapshots, in receipt order
	canceled []order.Order
}

// NewOrderBoard creates an empty OrderBoard.
func NewOrderBoard() *OrderBoard {
	return &OrderBoard{
		live: make(map[kernel.UUID]order.Order),
	}
}

// Apply validates an event against the current order set and applies it.
//
// Parameters:
//   - event: The lifecycle event to apply; its snapshot must match the
//     transition the event kind records
//
// Returns:
//   - order.Order: The resulting live snapshot; for cancellation events this
//     is the reopened (again dispatchable) order
//   - error: ObjectNotFoundError for unknown order ids, ValueIsInvalidError
//     for duplicate submissions or incompatible transitions
//
// A returned error means the event was NOT applied; callers are expected to
// log and drop it, so one stray event cannot corrupt the order set.
func (b *OrderBoard) Apply(event order.Event) (order.Order, error) {
	switch event.Kind() {
	case order.EventOrdered:
		return b.applyOrdered(event.Order())
	case order.EventStarted:
		return b.applyStarted(event.Order())
	case order.EventCompleted:
		return b.applyCompleted(event.Order())
	case order.EventCanceled:
		return b.applyCanceled(event.Order())
	default:
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("%d is not a valid event kind", event.Kind()))
	}
}

// Get returns the current live snapshot for the given order id.
func (b *OrderBoard) Get(id kernel.UUID) (order.Order, error) {
	o, ok := b.live[id]
	if !ok {
		return order.Order{}, errs.NewObjectNotFoundError("orderID", id.String())
	}
	return o, nil
}

// Snapshot derives the partitioned read-only view of the order set.
// Partitions list orders in arrival order; the Canceled partition is the
// audit trail of cancellations in receipt order.
func (b *OrderBoard) Snapshot() BoardSnapshot {
	var snapshot BoardSnapshot
	for _, id := range b.arrival {
		o := b.live[id]
		switch o.Status() {
		case order.Ordered:
			snapshot.Ordered = append(snapshot.Ordered, o)
		case order.InProgress:
			snapshot.InProgress = append(snapshot.InProgress, o)
		case order.Completed:
			snapshot.Completed = append(snapshot.Completed, o)
		case order.Canceled, order.Unknown:
			// Live snapshots are never left in these states.
		}
	}
	snapshot.Canceled = append(snapshot.Canceled, b.canceled...)
	return snapshot
}

func (b *OrderBoard) applyOrdered(o order.Order) (order.Order, error) {
	if err := o.Validate(); err != nil {
		return order.Order{}, err
	}
	if _, exists := b.live[o.ID()]; exists {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("order %s is already on the board", o.ID()))
	}
	if o.Status() != order.Ordered {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("submitted order %s is %s, not %s", o.ID(), o.Status(), order.Ordered))
	}

	b.live[o.ID()] = o
	b.arrival = append(b.arrival, o.ID())
	return o, nil
}

func (b *OrderBoard) applyStarted(o order.Order) (order.Order, error) {
	current, err := b.lookupOpen(o.ID())
	if err != nil {
		return order.Order{}, err
	}
	if current.Status() != order.Ordered {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("order %s is %s, only %s orders can be started",
				o.ID(), current.Status(), order.Ordered))
	}
	if o.Status() != order.InProgress || o.Worker() == nil {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("started snapshot of %s has no claiming worker", o.ID()))
	}

	b.live[o.ID()] = o
	return o, nil
}

func (b *OrderBoard) applyCompleted(o order.Order) (order.Order, error) {
	current, err := b.lookupOpen(o.ID())
	if err != nil {
		return order.Order{}, err
	}
	if current.Status() != order.InProgress {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("order %s is %s, only %s orders can be completed",
				o.ID(), current.Status(), order.InProgress))
	}
	if o.Status() != order.Completed || o.Worker() == nil {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("completed snapshot of %s has no claiming worker", o.ID()))
	}
	if !o.Worker().IsEqual(*current.Worker()) {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("order %s is claimed by worker %s, not %s",
				o.ID(), current.Worker(), o.Worker()))
	}

	b.live[o.ID()] = o
	return o, nil
}

func (b *OrderBoard) applyCanceled(o order.Order) (order.Order, error) {
	current, err := b.lookupOpen(o.ID())
	if err != nil {
		return order.Order{}, err
	}
	if current.Status() != order.InProgress {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("order %s is %s, only %s orders can be canceled",
				o.ID(), current.Status(), order.InProgress))
	}
	if o.Status() != order.Canceled {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("canceled snapshot of %s is %s, not %s", o.ID(), o.Status(), order.Canceled))
	}

	reopened, err := o.Reopen()
	if err != nil {
		return order.Order{}, err
	}

	b.canceled = append(b.canceled, o)
	b.live[o.ID()] = reopened
	return reopened, nil
}

// lookupOpen fetches the live snapshot and rejects terminal orders, guarding
// against a canceled-then-late-completing race.
func (b *OrderBoard) lookupOpen(id kernel.UUID) (order.Order, error) {
	current, ok := b.live[id]
	if !ok {
		return order.Order{}, errs.NewObjectNotFoundError("orderID", id.String())
	}
	if current.Status().IsTerminal() {
		return order.Order{}, errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("order %s is already in terminal state %s", id, current.Status()))
	}
	return current, nil
}

// BoardSnapshot is the derived, read-only projection of the order set,
// partitioned by lifecycle state. It is recomputed after every applied event
// and safe to hand out to other goroutines: all contained orders are
// immutable snapshots.
type BoardSnapshot struct {
	// Ordered lists dispatchable orders in arrival order.
	Ordered []order.Order

	// InProgress lists claimed orders in arrival order.
	InProgress []order.Order

	// Completed lists finished orders in arrival order.
	Completed []order.Order

	// Canceled is the audit trail of cancellation snapshots in receipt order.
	// The canceled orders themselves live on as dispatchable again.
	Canceled []order.Order
}
