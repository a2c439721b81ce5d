package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"coffeeshop/internal/core/application/barista"
	"coffeeshop/internal/core/application/ledger"
	"coffeeshop/internal/core/application/pourpool"
	"coffeeshop/internal/core/application/shop"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/jobs"
	"coffeeshop/internal/pkg/clock"
	"coffeeshop/internal/pkg/errs"
)

// CompositionRoot wires the full pipeline from configuration: the order
// screen, the pourer pool, the workers, the shop and the background jobs.
// Misconfiguration fails construction; nothing starts half-wired.
type CompositionRoot struct {
	coffeeShop *shop.Shop
	jobManager *jobs.JobManager
}

func NewCompositionRoot(configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	workerCount, err := intSetting("WORKER_COUNT", configs.WorkerCount)
	if err != nil {
		return nil, err
	}
	pourerCount, err := intSetting("POURER_COUNT", configs.PourerCount)
	if err != nil {
		return nil, err
	}
	queueCapacity, err := intSetting("POURER_QUEUE_CAPACITY", configs.PourerQueueCapacity)
	if err != nil {
		return nil, err
	}
	pourMin, err := intSetting("POUR_MIN_MS", configs.PourMinMs)
	if err != nil {
		return nil, err
	}
	pourMax, err := intSetting("POUR_MAX_MS", configs.PourMaxMs)
	if err != nil {
		return nil, err
	}

	pourTime, err := kernel.NewTimeRange(
		time.Duration(pourMin)*time.Millisecond,
		time.Duration(pourMax)*time.Millisecond,
	)
	if err != nil {
		return nil, err
	}

	screen, err := ledger.NewOrderScreen(logger)
	if err != nil {
		return nil, err
	}

	sleeper := clock.NewSleeper()
	pool, err := pourpool.NewPourerPool(pourerCount, queueCapacity, pourTime, sleeper, logger)
	if err != nil {
		return nil, err
	}

	if workerCount < 1 {
		return nil, errs.NewValueIsOutOfRangeError("WORKER_COUNT", workerCount, 1, 128)
	}
	workers := make([]*barista.Worker, 0, workerCount)
	for i := range workerCount {
		w, err := barista.NewWorker(fmt.Sprintf("Worker %d", i+1), screen, pool, sleeper, logger)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}

	coffeeShop, err := shop.NewShop(screen, pool, workers, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		coffeeShop: coffeeShop,
		jobManager: jobs.NewJobManager(coffeeShop, logger),
	}, nil
}

// Shop returns the wired shop.
func (c *CompositionRoot) Shop() *shop.Shop {
	return c.coffeeShop
}

// JobManager returns the background jobs bound to the shop.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

func intSetting(name, raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}
