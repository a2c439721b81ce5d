// Package jobs provides scheduled background tasks for the coffee shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic demo traffic and reporting of the shop.
//
// # Available Jobs
//
// 1. OrderFeedJob - Runs every three seconds to place a random menu item for the next customer in the rotation
// 2. BoardReportJob - Runs every five seconds to log the order board partition sizes
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager against the shop
//	jobManager := jobs.NewJobManager(coffeeShop, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Feed job ignores the expected shop-closed rejection at shutdown
// - Failed job starts will stop any already running jobs
package jobs
