package jobs

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"

	"coffeeshop/internal/core/application/shop"
	"coffeeshop/internal/core/domain/model/menu"

	"github.com/robfig/cron/v3"
)

// getCustomers returns the rotating demo customer roster.
func getCustomers() []string {
	return []string{
		"Michael Scott",
		"Jim Halpert",
		"Pam Beesly",
		"Dwight Schrute",
		"Kevin Malone",
		"Angela Martin",
		"Stanley Hudson",
		"Creed Bratton",
	}
}

// OrderFeedJob manages the scheduled demo order feed.
// Runs every three seconds to place a random menu item for the next customer
// in the rotation.
type OrderFeedJob struct {
	shop   *shop.Shop
	cron   *cron.Cron
	logger *slog.Logger

	mu   sync.Mutex
	next int
}

// NewOrderFeedJob creates a new job feeding orders into the shop.
func NewOrderFeedJob(s *shop.Shop, logger *slog.Logger) *OrderFeedJob {
	return &OrderFeedJob{
		shop:   s,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "order_feed_job"),
	}
}

// Start begins the order feed job to run every three seconds.
func (j *OrderFeedJob) Start() error {
	_, err := j.cron.AddFunc("*/3 * * * * *", func() {
		ctx := context.Background()
		customer := j.nextCustomer()
		catalog := menu.Catalog()
		item := catalog[rand.N(len(catalog))]

		if _, err := j.shop.Order(customer, item.Kind()); err != nil {
			// A closed shop is the expected end of the feed, not a failure.
			if !errors.Is(err, shop.ErrShopClosed) {
				j.logger.ErrorContext(ctx, "Order feed job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order feed job started (running every three seconds)")
	return nil
}

// Stop stops the order feed job.
func (j *OrderFeedJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order feed job stopped")
}

func (j *OrderFeedJob) nextCustomer() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	customers := getCustomers()
	customer := customers[j.next%len(customers)]
	j.next++
	return customer
}
