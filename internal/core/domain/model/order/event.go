package order

import (
	"fmt"
)

// EventKind identifies the lifecycle transition an Event records.
type EventKind int

const (
	// EventUnknown represents an invalid or undefined event kind.
	EventUnknown EventKind = iota

	// EventOrdered records a new order entering the ledger.
	EventOrdered

	// EventStarted records a worker claiming an order.
	EventStarted

	// EventCompleted records a claimed order finishing its pour.
	EventCompleted

	// EventCanceled records a claimed order being abandoned by a stopped worker.
	EventCanceled
)

// String returns the human-readable name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventOrdered:
		return "Ordered"
	case EventStarted:
		return "Started"
	case EventCompleted:
		return "Completed"
	case EventCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Event is the only way ledger state is mutated: an immutable record of a
// single lifecycle transition, carrying the full post-transition Order
// snapshot rather than a delta. Carrying the snapshot lets the ledger verify
// the referenced order exists and is in a compatible state before applying,
// so a late or duplicate event is rejected instead of corrupting state.
type Event struct {
	kind  EventKind
	order Order
}

// NewOrderedEvent records a new order entering the ledger.
// The snapshot must be in the Ordered status.
func NewOrderedEvent(o Order) Event {
	return Event{kind: EventOrdered, order: o}
}

// NewStartedEvent records a worker claiming an order.
// The snapshot must be in the InProgress status with the worker attached.
func NewStartedEvent(o Order) Event {
	return Event{kind: EventStarted, order: o}
}

// NewCompletedEvent records an order finishing its pour.
// The snapshot must be in the Completed status.
func NewCompletedEvent(o Order) Event {
	return Event{kind: EventCompleted, order: o}
}

// NewCanceledEvent records a claimed order being abandoned by a stopped worker.
// The snapshot must be in the Canceled status.
func NewCanceledEvent(o Order) Event {
	return Event{kind: EventCanceled, order: o}
}

// Kind returns the lifecycle transition this event records.
func (e Event) Kind() EventKind {
	return e.kind
}

// Order returns the full post-transition order snapshot.
func (e Event) Order() Order {
	return e.order
}

// String formats the event for logs.
func (e Event) String() string {
	return fmt.Sprintf("%s(%s)", e.kind, e.order.ID())
}
