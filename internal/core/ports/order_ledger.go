package ports

import (
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
)

// OrderLedger defines the contract of the single authoritative owner of order
// state. All reads and writes go through it; components never share mutable
// order state directly, they exchange immutable snapshots over channels.
type OrderLedger interface {
	// Submit posts a new order to the ledger. Fire-and-forget: the order
	// becomes visible to workers only after the event is applied. Submissions
	// after Close are dropped.
	Submit(o order.Order)

	// Dispatch returns the stream of dispatchable orders. The ledger feeds it
	// in arrival order and hands each order out exactly once. The channel is
	// closed when the ledger shuts down.
	Dispatch() <-chan order.Order

	// ReportStarted posts a claim event carrying the claimed snapshot.
	ReportStarted(o order.Order)

	// ReportCompleted posts a completion event carrying the completed snapshot.
	ReportCompleted(o order.Order)

	// ReportCanceled posts a cancellation event carrying the canceled snapshot.
	// The ledger reopens the order and returns it to the dispatchable set.
	ReportCanceled(o order.Order)

	// Board returns the latest derived partition view of the order set.
	Board() services.BoardSnapshot
}
