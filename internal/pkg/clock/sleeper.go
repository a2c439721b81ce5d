// Package clock provides the real time-based implementation of the delay
// primitive used by the core. The core depends on the ports.Sleeper interface
// only; this package is wired in by the composition root.
package clock

import (
	"context"
	"time"
)

// Sleeper suspends callers using real timers. The zero value is ready to use.
type Sleeper struct{}

// NewSleeper creates a timer-backed Sleeper.
func NewSleeper() Sleeper {
	return Sleeper{}
}

// Sleep blocks for d or until ctx is canceled, whichever comes first.
// A non-positive d returns immediately (after a cancellation check), so
// callers can pass drawn durations without special-casing zero ranges.
func (Sleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
