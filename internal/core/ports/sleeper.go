package ports

import (
	"context"
	"time"
)

// Sleeper abstracts the delay primitive used to simulate preparation and
// pouring work. Injecting it keeps the time source out of the core, so tests
// can replace real sleeping with instrumented fakes.
type Sleeper interface {
	// Sleep suspends the caller for d without blocking other goroutines.
	// Returns ctx.Err() if the context is canceled before the delay elapses.
	Sleep(ctx context.Context, d time.Duration) error
}
