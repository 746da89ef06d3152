package jobs

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"orderdesk/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderSyncJob *OrderSyncJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getOrdersHandler queries.GetOrdersQueryHandler,
	openOrders prometheus.Gauge,
	syncSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderSyncJob: NewOrderSyncJob(getOrdersHandler, openOrders, syncSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start; jobs already started by this
// call are stopped again before it returns.
func (jm *JobManager) StartAll() error {
	if err := jm.orderSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start order sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderSyncJob.Stop()
}
