package pourpool

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/ports"
)

// pourer serves its bounded request queue strictly one request at a time,
// in arrival order.
type pourer struct {
	name     string
	requests chan request
	quit     <-chan struct{}
	done     chan struct{}

	pourTime kernel.TimeRange
	sleeper  ports.Sleeper
	logger   *slog.Logger
}

func newPourer(
	name string,
	queueCapacity int,
	pourTime kernel.TimeRange,
	sleeper ports.Sleeper,
	quit <-chan struct{},
	logger *slog.Logger,
) *pourer {
	return &pourer{
		name:     name,
		requests: make(chan request, queueCapacity),
		quit:     quit,
		done:     make(chan struct{}),
		pourTime: pourTime,
		sleeper:  sleeper,
		logger:   logger.With("component", "Pourer", "pourer", name),
	}
}

func (pr *pourer) run() {
	defer close(pr.done)

	for req := range pr.requests {
		select {
		case <-pr.quit:
			// Queued but never started: resolve instead of pouring.
			req.result <- ErrPoolClosed
			continue
		default:
		}
		pr.pour(req)
	}
}

// pour runs to completion even if the requester stopped waiting; the one-shot
// result channel is buffered, so signaling never blocks.
func (pr *pourer) pour(req request) {
	pr.logger.Info("pouring", "order", req.order.String())

	err := pr.sleeper.Sleep(context.Background(), pr.pourTime.Uniform())
	if err == nil {
		pr.logger.Info("poured", "order", req.order.String())
	}
	req.result <- err
}
