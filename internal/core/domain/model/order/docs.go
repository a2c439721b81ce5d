// Package order provides domain entities and business logic for order management
// in the coffee shop system. It implements the Order value object with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: An immutable value whose transitions produce new snapshots
//   - Status: A state machine that enforces valid order status transitions
//   - Event: The tagged union of lifecycle transitions consumed by the ledger
//
// Key business rules:
//   - Orders must have a valid unique identifier, menu item, and customer
//   - Order status follows a defined workflow: Ordered -> InProgress -> Completed
//   - A stopped worker cancels its claimed order; canceled orders are reopened
//     and returned to the dispatchable set
//   - Cancellation clears the claiming worker, completion retains it
//
// Orders are never mutated in place: every transition returns a new Order value
// with the same id, so snapshots can be passed freely between goroutines while
// the ledger remains the single authority over the current state.
package order
