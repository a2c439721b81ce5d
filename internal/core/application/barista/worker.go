package barista

import (
	"context"
	"log/slog"
	"sync"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
)

// Worker claims orders from the ledger's dispatch stream and works them to a
// terminal state. Run one goroutine per worker via Start.
type Worker struct {
	id      kernel.UUID
	name    string
	ledger  ports.OrderLedger
	pour    ports.PourService
	sleeper ports.Sleeper
	logger  *slog.Logger

	cancel    context.CancelFunc
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewWorker creates a named worker bound to the given ledger and pour service.
func NewWorker(
	name string,
	ledger ports.OrderLedger,
	pour ports.PourService,
	sleeper ports.Sleeper,
	logger *slog.Logger,
) (*Worker, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if ledger == nil {
		return nil, errs.NewValueIsRequiredError("ledger")
	}
	if pour == nil {
		return nil, errs.NewValueIsRequiredError("pour")
	}
	if sleeper == nil {
		return nil, errs.NewValueIsRequiredError("sleeper")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	id := kernel.NewUUID()

	return &Worker{
		id:      id,
		name:    name,
		ledger:  ledger,
		pour:    pour,
		sleeper: sleeper,
		done:    make(chan struct{}),
		logger:  logger.With("component", "Worker", "worker", name),
	}, nil
}

// ID returns the worker's identity, attached to every order it claims.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// Name returns the worker's display name.
func (w *Worker) Name() string {
	return w.name
}

// Start launches the worker's claim loop. Subsequent calls are no-ops.
func (w *Worker) Start(ctx context.Context) {
	w.startOnce.Do(func() {
		ctx, w.cancel = context.WithCancel(ctx)
		go w.run(ctx)
	})
}

// Stop asks the worker to finish up and waits until it has left its shift.
// An order claimed at that moment is resolved as canceled, not abandoned.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		if w.cancel == nil {
			return
		}
		w.cancel()
		<-w.done
	})
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)

	w.logger.Info("on shift")
	defer w.logger.Info("off shift")

	for {
		select {
		case <-ctx.Done():
			return
		case o, ok := <-w.ledger.Dispatch():
			if !ok {
				return
			}
			w.process(ctx, o)
		}
	}
}

// process drives one order from claim to exactly one terminal report.
func (w *Worker) process(ctx context.Context, o order.Order) {
	claimed, err := o.Start(w.id)
	if err != nil {
		w.logger.Warn("order cannot be claimed", "order", o.String(), "error", err)
		return
	}
	w.ledger.ReportStarted(claimed)
	w.logger.Info("processing order", "order", claimed.String())

	completed := false
	defer func() {
		w.finalize(claimed, completed)
	}()

	if err := w.sleeper.Sleep(ctx, claimed.Item().PrepTime().Uniform()); err != nil {
		return
	}
	if err := w.pour.Pour(ctx, claimed); err != nil {
		return
	}
	completed = true
}

func (w *Worker) finalize(claimed order.Order, completed bool) {
	if completed {
		done, err := claimed.Complete()
		if err != nil {
			w.logger.Warn("order cannot be completed", "order", claimed.String(), "error", err)
			return
		}
		w.ledger.ReportCompleted(done)
		w.logger.Info("completed order", "order", done.String())
		return
	}

	canceled, err := claimed.Cancel()
	if err != nil {
		w.logger.Warn("order cannot be canceled", "order", claimed.String(), "error", err)
		return
	}
	w.ledger.ReportCanceled(canceled)
	w.logger.Info("canceled order", "order", canceled.String())
}
