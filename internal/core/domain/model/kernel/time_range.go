package kernel

import (
	"fmt"
	"math/rand/v2"
	"time"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

// ErrTimeRangeIsNotConstructed is returned when attempting to use an improperly
// initialized TimeRange. Ranges must be created using the NewTimeRange constructor
// to ensure validity.
var ErrTimeRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"time range must be created via NewTimeRange constructor")

// TimeRange represents a bounded duration interval [Min, Max] used to derive
// randomized simulated work times, such as preparation and pouring delays.
// TimeRange is an immutable value object; the zero value is invalid and will
// fail validation - use the constructor to create instances.
//
// Example:
//
//	r, err := kernel.NewTimeRange(4*time.Second, 10*time.Second)
//	if err != nil {
//	    // Handle validation error
//	}
//	delay := r.Uniform() // random duration in [4s, 10s]
type TimeRange struct { //nolint:recvcheck //using for validation
	min   time.Duration
	max   time.Duration
	guard guard.ConstructorGuard
}

// NewTimeRange creates a TimeRange with the given bounds.
// Min must be non-negative and must not exceed max.
//
// Parameters:
//   - min: Lower bound of the interval (inclusive)
//   - max: Upper bound of the interval (inclusive)
//
// Returns:
//   - TimeRange: The created range if validation passes
//   - error: ValueIsOutOfRangeError if the bounds are inconsistent
func NewTimeRange(min, max time.Duration) (TimeRange, error) {
	if min < 0 {
		return TimeRange{}, errs.NewValueIsOutOfRangeError("min duration", min, 0, max)
	}
	if max < min {
		return TimeRange{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"max duration", max, min, max,
			fmt.Errorf("max %s is below min %s", max, min),
		)
	}

	return TimeRange{
		min:   min,
		max:   max,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Min returns the lower bound of the range.
func (r TimeRange) Min() time.Duration {
	return r.min
}

// Max returns the upper bound of the range.
func (r TimeRange) Max() time.Duration {
	return r.max
}

// Uniform draws a random duration uniformly distributed over [Min, Max].
// A degenerate range (Min == Max) always returns Min.
func (r TimeRange) Uniform() time.Duration {
	if r.max == r.min {
		return r.min
	}
	return r.min + rand.N(r.max-r.min+1)
}

// Contains reports whether d lies within the range bounds, inclusive.
func (r TimeRange) Contains(d time.Duration) bool {
	return d >= r.min && d <= r.max
}

// IsEqual compares two ranges by their bounds.
func (r TimeRange) IsEqual(other TimeRange) bool {
	return r.min == other.min && r.max == other.max
}

// String returns a human-readable representation of the range.
func (r TimeRange) String() string {
	return fmt.Sprintf("TimeRange(%s..%s)", r.min, r.max)
}

// Validate checks that the TimeRange was created through its constructor.
// Returns ErrTimeRangeIsNotConstructed for zero-value ranges.
func (r TimeRange) Validate() error {
	return r.guard.Validate(ErrTimeRangeIsNotConstructed)
}
