package shop

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"coffeeshop/internal/core/application/barista"
	"coffeeshop/internal/core/application/ledger"
	"coffeeshop/internal/core/application/pourpool"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/pkg/errs"
)

// ErrShopClosed is returned to orders placed while the shop is not open.
var ErrShopClosed = errors.New("shop is closed")

type state int

const (
	stateCreated state = iota
	stateOpen
	stateClosed
)

// Shop owns the pipeline end to end and exposes the public surface the
// adapters talk to.
type Shop struct {
	screen  *ledger.OrderScreen
	pool    *pourpool.PourerPool
	workers []*barista.Worker
	logger  *slog.Logger

	mu    sync.Mutex
	state state
}

// NewShop wires an order screen, a pourer pool and at least one worker into a
// closed shop. Call Open to start serving.
func NewShop(
	screen *ledger.OrderScreen,
	pool *pourpool.PourerPool,
	workers []*barista.Worker,
	logger *slog.Logger,
) (*Shop, error) {
	if screen == nil {
		return nil, errs.NewValueIsRequiredError("screen")
	}
	if pool == nil {
		return nil, errs.NewValueIsRequiredError("pool")
	}
	if len(workers) == 0 {
		return nil, errs.NewValueIsRequiredError("workers")
	}
	for _, w := range workers {
		if w == nil {
			return nil, errs.NewValueIsRequiredError("workers")
		}
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Shop{
		screen:  screen,
		pool:    pool,
		workers: workers,
		logger:  logger.With("component", "Shop"),
	}, nil
}

// Open puts the workers on shift. Opening an already open shop is a no-op;
// a closed shop cannot reopen.
func (s *Shop) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateOpen:
		return nil
	case stateClosed:
		return ErrShopClosed
	case stateCreated:
	}

	for _, w := range s.workers {
		w.Start(context.Background())
	}
	s.state = stateOpen
	s.logger.Info("shop is open", "workers", len(s.workers))

	return nil
}

// Order places an order for the given customer and menu item kind and returns
// the accepted order. Orders are only taken while the shop is open; anything
// else gets an explicit ErrShopClosed rather than a silent drop.
func (s *Shop) Order(customer string, kind menu.Kind) (order.Order, error) {
	item, err := menu.NewMenuItem(kind)
	if err != nil {
		return order.Order{}, err
	}
	o, err := order.NewOrder(kernel.NewUUID(), item, customer)
	if err != nil {
		return order.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateOpen {
		return order.Order{}, ErrShopClosed
	}
	s.screen.Submit(o)

	return o, nil
}

// Board returns the latest partition view of the order set. Available in any
// state, including after Close.
func (s *Shop) Board() services.BoardSnapshot {
	return s.screen.Board()
}

// Close shuts the shop down and waits for the pipeline to settle. Idempotent.
func (s *Shop) Close() {
	s.mu.Lock()
	if s.state == stateClosed {
		s.mu.Unlock()
		return
	}
	s.state = stateClosed
	s.mu.Unlock()

	s.logger.Info("shop is closing")

	// Workers first so their terminal reports are posted, then the pool,
	// then the ledger, which drains those reports before going quiet.
	for _, w := range s.workers {
		w.Stop()
	}
	s.pool.Close()
	s.screen.Close()

	s.logger.Info("shop is closed")
}
