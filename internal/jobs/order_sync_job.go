package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// OrderSyncJob periodically refreshes the open-order listing for the active
// store and publishes the count to the open-orders gauge. The dashboard
// badge reads the gauge instead of hitting the backend on every render.
type OrderSyncJob struct {
	handler    queries.GetOrdersQueryHandler
	openOrders prometheus.Gauge
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOrderSyncJob creates a job that refreshes the open-order count on the
// given cron schedule (six-field expression with seconds).
func NewOrderSyncJob(
	handler queries.GetOrdersQueryHandler,
	openOrders prometheus.Gauge,
	schedule string,
	logger *slog.Logger,
) *OrderSyncJob {
	return &OrderSyncJob{
		handler:    handler,
		openOrders: openOrders,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "order_sync_job"),
	}
}

// Start begins the order sync job on its schedule.
func (j *OrderSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		query, queryErr := queries.NewGetOrdersQuery(order.Open)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Order sync job failed to build query", "error", queryErr)
			return
		}

		views, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			// No session yet is an expected state before the operator signs in
			if !errors.Is(handleErr, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Order sync job failed", "error", handleErr)
			}
			return
		}

		j.openOrders.Set(float64(len(views)))
		j.logger.InfoContext(ctx, "Open-order count refreshed", "count", len(views))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order sync job.
func (j *OrderSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order sync job stopped")
}
