package ledger

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/pkg/errs"
)

// eventBufferSize bounds the inbound event channel. Reports posted while the
// loop is busy queue up here instead of blocking the reporter.
const eventBufferSize = 64

// OrderScreen is the single authoritative owner of order state.
//
// One goroutine (started by the constructor) consumes the event channel and is
// the only code that touches the OrderBoard, so events are applied strictly in
// receipt order and no mutation can race with another. The same loop feeds the
// dispatch channel from its FIFO queue of dispatchable orders; a conditional
// select case hands each order to exactly one receiver without ever blocking
// event intake.
//
// After every applied event the derived partition snapshot is republished and
// logged. Events that reference unknown or already-terminal orders are logged
// and dropped, never applied: one stray event must not take the ledger down.
type OrderScreen struct {
	board *services.OrderBoard

	events   chan order.Event
	dispatch chan order.Order
	queue    []order.Order

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once

	view   atomic.Value
	logger *slog.Logger
}

// NewOrderScreen creates an OrderScreen and starts its consumer loop.
// The returned screen is immediately ready to accept submissions.
//
// Returns:
//   - *OrderScreen: The running ledger
//   - error: ValueIsRequiredError if logger is nil
func NewOrderScreen(logger *slog.Logger) (*OrderScreen, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	s := &OrderScreen{
		board:    services.NewOrderBoard(),
		events:   make(chan order.Event, eventBufferSize),
		dispatch: make(chan order.Order),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		logger:   logger.With("component", "order_screen"),
	}
	s.view.Store(services.BoardSnapshot{})

	go s.run()
	return s, nil
}

// Submit posts a new order to the ledger. Fire-and-forget: the order becomes
// visible on the board and in the dispatch stream only once the event is
// applied. Submissions after Close are logged and dropped.
func (s *OrderScreen) Submit(o order.Order) {
	s.post(order.NewOrderedEvent(o))
}

// Dispatch returns the stream of dispatchable orders. Each order is handed
// out exactly once, in arrival order. The channel is closed on shutdown.
func (s *OrderScreen) Dispatch() <-chan order.Order {
	return s.dispatch
}

// ReportStarted posts a claim event carrying the claimed snapshot.
func (s *OrderScreen) ReportStarted(o order.Order) {
	s.post(order.NewStartedEvent(o))
}

// ReportCompleted posts a completion event carrying the completed snapshot.
func (s *OrderScreen) ReportCompleted(o order.Order) {
	s.post(order.NewCompletedEvent(o))
}

// ReportCanceled posts a cancellation event carrying the canceled snapshot.
// Once applied, the order is reopened and rejoins the dispatch queue.
func (s *OrderScreen) ReportCanceled(o order.Order) {
	s.post(order.NewCanceledEvent(o))
}

// Board returns the latest published partition snapshot. Safe to call from
// any goroutine at any time, including after Close.
func (s *OrderScreen) Board() services.BoardSnapshot {
	return s.view.Load().(services.BoardSnapshot)
}

// Close shuts the ledger down: pending events are drained and applied, the
// dispatch channel is closed, and the final board snapshot stays readable.
// Close blocks until the consumer loop has exited and is safe to call more
// than once.
func (s *OrderScreen) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	<-s.stopped
}

// post hands an event to the consumer loop, dropping it if the ledger has
// been closed. Reporters must never hang on a dead ledger.
func (s *OrderScreen) post(ev order.Event) {
	select {
	case s.events <- ev:
	case <-s.done:
		s.logger.Warn("event dropped, ledger is closed", "event", ev.String())
	}
}

// run is the single consumer loop. It is the only goroutine that touches
// s.board and s.queue.
func (s *OrderScreen) run() {
	defer close(s.stopped)

	for {
		// The dispatch case is enabled only while the queue is non-empty;
		// a nil channel case is never selected.
		var (
			out  chan order.Order
			next order.Order
		)
		if len(s.queue) > 0 {
			out = s.dispatch
			next = s.queue[0]
		}

		select {
		case ev := <-s.events:
			s.apply(ev)
		case out <- next:
			s.queue = s.queue[1:]
		case <-s.done:
			s.drain()
			close(s.dispatch)
			return
		}
	}
}

// drain applies events already posted at shutdown so terminal reports from
// stopping workers land on the final board.
func (s *OrderScreen) drain() {
	for {
		select {
		case ev := <-s.events:
			s.apply(ev)
		default:
			return
		}
	}
}

func (s *OrderScreen) apply(ev order.Event) {
	applied, err := s.board.Apply(ev)
	if err != nil {
		s.logger.Warn("event ignored", "event", ev.String(), "error", err)
		return
	}

	switch ev.Kind() {
	case order.EventOrdered, order.EventCanceled:
		// New submissions and reopened cancellations are dispatchable.
		s.queue = append(s.queue, applied)
	case order.EventStarted, order.EventCompleted, order.EventUnknown:
	}

	snapshot := s.board.Snapshot()
	s.view.Store(snapshot)
	s.logger.Info("order board updated",
		"event", ev.String(),
		"ordered", summarize(snapshot.Ordered),
		"in_progress", summarize(snapshot.InProgress),
		"completed", summarize(snapshot.Completed),
	)
}

// summarize renders a partition for the board log lines.
func summarize(orders []order.Order) []string {
	names := make([]string, len(orders))
	for i, o := range orders {
		names[i] = o.String()
	}
	return names
}
