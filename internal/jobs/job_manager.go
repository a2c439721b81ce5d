package jobs

import (
	"fmt"
	"log/slog"

	"coffeeshop/internal/core/application/shop"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderFeedJob   *OrderFeedJob
	boardReportJob *BoardReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the shop as the dependency the jobs run against.
func NewJobManager(s *shop.Shop, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderFeedJob:   NewOrderFeedJob(s, logger),
		boardReportJob: NewBoardReportJob(s, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderFeedJob.Start(); err != nil {
		return fmt.Errorf("failed to start order feed job: %w", err)
	}

	if err := jm.boardReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderFeedJob.Stop()
		return fmt.Errorf("failed to start board report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.boardReportJob.Stop()
	jm.orderFeedJob.Stop()
}
