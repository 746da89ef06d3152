package cmd

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	adapterhttp "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/backendhttp"
	"orderdesk/internal/adapters/out/postgres/sessionrepo"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"
	"orderdesk/internal/pkg/metrics"
)

type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	sessionStore *sessionrepo.GormSessionStore
	gateway      *backendhttp.Client
	openOrders   prometheus.Gauge
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	sessionStore, err := sessionrepo.NewGormSessionStore(gormDB)
	if err != nil {
		return CompositionRoot{}, err
	}

	gatewayMetrics := metrics.NewGatewayMetrics(prometheus.DefaultRegisterer)
	gateway := backendhttp.NewClient(
		config.BackendBaseURL,
		&http.Client{Timeout: 30 * time.Second},
		sessionStore,
		gatewayMetrics,
	)

	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		sessionStore: sessionStore,
		gateway:      gateway,
		openOrders:   metrics.OpenOrdersGauge(prometheus.DefaultRegisterer),
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) SessionStore() ports.SessionStore {
	return c.sessionStore
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.gateway)
}

func (c *CompositionRoot) CreateChangeOrderStateCommandHandler() commands.ChangeOrderStateCommandHandler {
	return commands.NewChangeOrderStateCommandHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gateway, c.sessionStore)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateApproveOrderCommandHandler(),
		c.CreateChangeOrderStateCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrdersQueryHandler(),
		c.openOrders,
		c.config.SyncSchedule,
		c.logger,
	)
}
