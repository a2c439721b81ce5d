package jobs

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/application/shop"

	"github.com/robfig/cron/v3"
)

// BoardReportJob manages the scheduled logging of the order board.
// Runs every five seconds to report the partition sizes.
type BoardReportJob struct {
	shop   *shop.Shop
	cron   *cron.Cron
	logger *slog.Logger
}

// NewBoardReportJob creates a new job reporting the board state.
func NewBoardReportJob(s *shop.Shop, logger *slog.Logger) *BoardReportJob {
	return &BoardReportJob{
		shop:   s,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "board_report_job"),
	}
}

// Start begins the board report job to run every five seconds.
func (j *BoardReportJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		board := j.shop.Board()

		j.logger.InfoContext(ctx, "Order board",
			"ordered", len(board.Ordered),
			"inProgress", len(board.InProgress),
			"completed", len(board.Completed),
			"canceled", len(board.Canceled),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board report job started (running every five seconds)")
	return nil
}

// Stop stops the board report job.
func (j *BoardReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board report job stopped")
}
