package pourpool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

const (
	minPourers = 1
	maxPourers = 128

	minQueueCapacity = 0
	maxQueueCapacity = 1024
)

// ErrPoolClosed is returned to requests that the pool can no longer serve
// because Close was called.
var ErrPoolClosed = errors.New("pourer pool is closed")

// request pairs an order with the one-shot channel its outcome is delivered on.
type request struct {
	order  order.Order
	result chan error
}

var _ ports.PourService = (*PourerPool)(nil)

// PourerPool owns a fixed set of pourers and routes each Pour request to
// exactly one of them.
type PourerPool struct {
	pourers []*pourer
	quit    chan struct{}

	mu        sync.RWMutex
	closed    bool
	admitting sync.WaitGroup

	logger *slog.Logger
}

// NewPourerPool creates a pool of count pourers, each with a request queue of
// the given capacity, drawing pour durations from pourTime.
func NewPourerPool(
	count int,
	queueCapacity int,
	pourTime kernel.TimeRange,
	sleeper ports.Sleeper,
	logger *slog.Logger,
) (*PourerPool, error) {
	if count < minPourers || count > maxPourers {
		return nil, errs.NewValueIsOutOfRangeError("count", count, minPourers, maxPourers)
	}
	if queueCapacity < minQueueCapacity || queueCapacity > maxQueueCapacity {
		return nil, errs.NewValueIsOutOfRangeError(
			"queueCapacity", queueCapacity, minQueueCapacity, maxQueueCapacity)
	}
	if err := pourTime.Validate(); err != nil {
		return nil, err
	}
	if sleeper == nil {
		return nil, errs.NewValueIsRequiredError("sleeper")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	pool := &PourerPool{
		quit:   make(chan struct{}),
		logger: logger.With("component", "PourerPool"),
	}
	for i := range count {
		name := fmt.Sprintf("pourer %d", i+1)
		pr := newPourer(name, queueCapacity, pourTime, sleeper, pool.quit, logger)
		pool.pourers = append(pool.pourers, pr)
		go pr.run()
	}

	return pool, nil
}

// Pour offers o to every pourer at once, commits to exactly one, and blocks
// until that pourer signals the outcome. Returns ctx.Err() if ctx is canceled
// while waiting, or ErrPoolClosed if the pool shuts down before the request
// is started.
func (p *PourerPool) Pour(ctx context.Context, o order.Order) error {
	result, err := p.admit(ctx, o)
	if err != nil {
		return err
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// admit commits the request to exactly one pourer. The admitting WaitGroup
// keeps Close from closing request queues while a send may still be in flight.
func (p *PourerPool) admit(ctx context.Context, o order.Order) (<-chan error, error) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil, ErrPoolClosed
	}
	p.admitting.Add(1)
	p.mu.RUnlock()
	defer p.admitting.Done()

	req := request{order: o, result: make(chan error, 1)}

	cases := make([]reflect.SelectCase, 0, len(p.pourers)+2)
	for _, pr := range p.pourers {
		cases = append(cases, reflect.SelectCase{
			Dir:  reflect.SelectSend,
			Chan: reflect.ValueOf(pr.requests),
			Send: reflect.ValueOf(req),
		})
	}
	quitIdx := len(cases)
	cases = append(cases, reflect.SelectCase{
		Dir:  reflect.SelectRecv,
		Chan: reflect.ValueOf(p.quit),
	})
	ctxIdx := len(cases)
	cases = append(cases, reflect.SelectCase{
		Dir:  reflect.SelectRecv,
		Chan: reflect.ValueOf(ctx.Done()),
	})

	switch chosen, _, _ := reflect.Select(cases); chosen {
	case quitIdx:
		return nil, ErrPoolClosed
	case ctxIdx:
		return nil, ctx.Err()
	default:
		return req.result, nil
	}
}

// Close stops admissions, fails queued-but-unstarted requests with
// ErrPoolClosed and waits for every pourer to finish its in-flight pour.
func (p *PourerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.quit)
	p.admitting.Wait()

	for _, pr := range p.pourers {
		close(pr.requests)
	}
	for _, pr := range p.pourers {
		<-pr.done
	}

	p.logger.Info("pool closed")
}
