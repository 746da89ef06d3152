// Package jobs provides scheduled background tasks for the dashboard.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderSyncJob - Periodically lists open orders for the active store and
// refreshes the open-orders gauge backing the dashboard badge.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getOrdersHandler, openOrders, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The sync job treats a missing session as an expected state and stays quiet
// - All other failures are logged; the job retries on the next tick
// - Failed job starts stop any already running jobs
package jobs
