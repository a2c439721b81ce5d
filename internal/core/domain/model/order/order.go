package order

import (
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrWorkerIsNotAssigned is returned when a transition that requires a
	// claiming worker is attempted on an order without one.
	ErrWorkerIsNotAssigned = errors.New("order has no worker assigned")
)

// Order represents a customer order moving through the fulfillment pipeline.
//
// Order is an immutable value: state transitions never mutate the receiver,
// they return a new Order snapshot with the same id. This is what makes
// passing orders between the ledger, workers, and the pourer pool safe -
// every component holds its own copy and the ledger's event loop is the only
// place where the authoritative snapshot is replaced.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a valid menu item
//   - Customer must be non-empty
//   - An Ordered order never has a worker attached
//   - At most one worker is attached at any time; cancellation clears the
//     worker, completion retains it
//   - Status transitions follow the Status state machine
type Order struct { //nolint:recvcheck //using for validation
	// id is the unique identifier for the order
	id kernel.UUID

	// item is what was ordered; carries the preparation time range
	item menu.MenuItem

	// customer is a free-text customer identifier
	customer string

	// workerID is the claiming worker's ID (nil while dispatchable)
	workerID *kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in the Ordered status with no worker attached.
// This is the only way to create a valid Order.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - item: The menu item being ordered (must come from the menu catalog)
//   - customer: Free-text customer identifier (must be non-empty)
//
// Returns:
//   - Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.UUID, item menu.MenuItem, customer string) (Order, error) {
	o := Order{
		status: Ordered,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItem(item),
		o.setCustomer(customer),
	); err != nil {
		return Order{}, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID, regardless of status:
// all snapshots of one order are "the same order".
func (o Order) IsEqual(other Order) bool {
	return o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o Order) ID() kernel.UUID {
	return o.id
}

// Item returns the ordered menu item.
func (o Order) Item() menu.MenuItem {
	return o.item
}

// Customer returns the customer identifier.
func (o Order) Customer() string {
	return o.customer
}

// Status returns the current status of the order snapshot.
func (o Order) Status() Status {
	return o.status
}

// Worker returns the claiming worker's ID.
// Returns nil while the order is dispatchable or after cancellation.
func (o Order) Worker() *kernel.UUID {
	return o.workerID
}

// String formats the order for logs.
func (o Order) String() string {
	return fmt.Sprintf("%s for %s [%s]", o.item, o.customer, o.status)
}

// Start returns a new snapshot of the order claimed by the given worker.
//
// Business rules:
//   - The worker ID must be valid
//   - The order must be in Ordered status
//
// Returns:
//   - Order: New snapshot in InProgress status with the worker attached
//   - error: If the worker ID is invalid or the transition is not allowed
func (o Order) Start(workerID kernel.UUID) (Order, error) {
	if err := workerID.Validate(); err != nil {
		return Order{}, err
	}

	newStatus, err := o.status.Start()
	if err != nil {
		return Order{}, err
	}

	claimed := o
	claimed.status = newStatus
	claimed.workerID = &workerID
	return claimed, nil
}

// Complete returns a new snapshot of the order marked Completed.
// The claiming worker is retained on the completed snapshot for audit.
//
// Business rules:
//   - The order must be in InProgress status
//   - The order must have a worker attached
//
// Returns:
//   - Order: New snapshot in Completed status
//   - error: If the transition is not allowed
func (o Order) Complete() (Order, error) {
	newStatus, err := o.status.Complete()
	if err != nil {
		return Order{}, err
	}

	if o.workerID == nil {
		return Order{}, ErrWorkerIsNotAssigned
	}

	done := o
	done.status = newStatus
	return done, nil
}

// Cancel returns a new snapshot of the order marked Canceled with the
// worker cleared, so the order can be re-claimed after it is reopened.
//
// Business rules:
//   - The order must be in InProgress status
//
// Returns:
//   - Order: New snapshot in Canceled status with no worker attached
//   - error: If the transition is not allowed
func (o Order) Cancel() (Order, error) {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return Order{}, err
	}

	canceled := o
	canceled.status = newStatus
	canceled.workerID = nil
	return canceled, nil
}

// Reopen returns a new snapshot of a canceled order back in the Ordered
// status, making it dispatchable again.
//
// Business rules:
//   - The order must be in Canceled status
//
// Returns:
//   - Order: New snapshot in Ordered status with no worker attached
//   - error: If the transition is not allowed
func (o Order) Reopen() (Order, error) {
	newStatus, err := o.status.Reopen()
	if err != nil {
		return Order{}, err
	}

	reopened := o
	reopened.status = newStatus
	reopened.workerID = nil
	return reopened, nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setItem validates and sets the ordered menu item.
// This is a private method used only during construction.
func (o *Order) setItem(item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.item = item
	return nil
}

// setCustomer validates and sets the customer identifier.
// This is a private method used only during construction.
func (o *Order) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}
