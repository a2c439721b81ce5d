package order

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Ordered ──> InProgress ──┬──> Completed
//	   ^                     │
//	   └──────── Canceled <──┘
//	        (reopened for re-claiming)
//
// Status is a value object that validates state transitions
// and provides string representations for display and logging.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the initial status when an order is first submitted.
	// Orders in this status are dispatchable: waiting to be claimed by a worker.
	Ordered

	// InProgress indicates the order has been claimed by a worker and is
	// being prepared.
	InProgress

	// Completed indicates the order has been fully prepared and poured.
	// This is a final state with no further transitions allowed.
	Completed

	// Canceled indicates the claiming worker was stopped mid-order.
	// Canceled orders are reopened and returned to the dispatchable set.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Ordered:    "Ordered",
		InProgress: "InProgress",
		Completed:  "Completed",
		Canceled:   "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ordered:    "Ordered",
		InProgress: "InProgress",
		Completed:  "Completed",
		Canceled:   "Canceled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Ordered, InProgress, Completed, Canceled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Ordered", "InProgress", "Completed", or "Canceled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
// Only Completed is terminal: Canceled orders are reopened for re-claiming.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Ordered -> InProgress (worker claims the order)
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.Start() to enforce state transitions.
func (s Status) Start() (Status, error) {
	if s != Ordered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed (preparation and pour are done)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - InProgress -> Canceled (the claiming worker was stopped mid-order)
//
// Returns:
//   - (Canceled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Cancel() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Canceled, nil
}

// Reopen transitions the status back to Ordered.
//
// Valid transitions:
//   - Canceled -> Ordered (order returns to the dispatchable set)
//
// Returns:
//   - (Ordered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Reopen() (Status, error) {
	if s != Canceled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reopen", s.String()),
		)
	}

	return Ordered, nil
}
