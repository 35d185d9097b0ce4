package integration

import (
	"context"
	"fmt"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/facebookgo/clock"
	"github.com/heptiolabs/healthcheck"
	"github.com/panjf2000/ants/v2"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"ottolink.app/integration/business/connect"
	"ottolink.app/integration/business/connectivity"
	"ottolink.app/integration/business/dashboard"
	"ottolink.app/integration/cachestore"
	"ottolink.app/integration/config"
	"ottolink.app/integration/domain"
	"ottolink.app/integration/logthrottle"
	"ottolink.app/integration/model"
	"ottolink.app/integration/store"
	"ottolink.app/integration/workflow"
)

var ottolinkDB = sqldb.NewDatabase("ottolink", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

// CredentialStore is the durable credential surface used by the API.
type CredentialStore interface {
	Credentials(ctx context.Context) (model.Credentials, error)
	SaveExternalAPIKey(ctx context.Context, key string) error
	DeleteExternalAPIKey(ctx context.Context) error
}

//encore:service
type Service struct {
	connect      connect.Business
	connectivity connectivity.Business
	dashboard    dashboard.Business
	scheduler    domain.Scheduler
	credentials  CredentialStore

	temporal client.Client
	worker   worker.Worker
	pool     *ants.Pool
	health   healthcheck.Handler
}

func initService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	pgxdb := sqldb.Driver(ottolinkDB)
	rlog.Info("Initializing Store")
	repo := store.NewStore(pgxdb)

	clk := clock.New()
	throttle := logthrottle.New(clk, cfg.LogThrottleWindow, logthrottle.RlogSink)

	connectBiz := connect.NewConnectBusiness(
		cachestore.Tokens{},
		cachestore.SuccessFlags{},
		cachestore.IssueCounters{},
		repo,
		clk,
		cfg,
	)
	prober := connectivity.NewHTTPProber(cfg, repo, clk)
	connectivityBiz := connectivity.NewConnectivityBusiness(
		cachestore.ConnectivityStatus{},
		repo,
		prober,
		connectivity.NewDebouncer(clk, cfg.DebounceWindow),
		throttle,
		clk,
		cfg.ConnectivityCacheTTL,
	)
	dashboardBiz := dashboard.NewDashboardBusiness(
		cachestore.JWTs{},
		cachestore.PublicHashes{},
		repo,
		clk,
		cfg,
	)

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHostPort,
		Namespace: cfg.TemporalNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(connectivityBiz)
	w := worker.New(c, cfg.TaskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.Heartbeat)
	w.RegisterActivity(workflow.TickActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	pool, err := ants.NewPool(cfg.AsyncPoolSize, ants.WithNonblocking(true))
	if err != nil {
		w.Stop()
		c.Close()
		return nil, fmt.Errorf("create async pool: %w", err)
	}
	asyncPool = pool

	s := &Service{
		connect:      connectBiz,
		connectivity: connectivityBiz,
		dashboard:    dashboardBiz,
		scheduler:    domain.NewHeartbeatScheduler(c, connectivityBiz, cfg),
		credentials:  repo,
		temporal:     c,
		worker:       w,
		pool:         pool,
	}
	s.health = newHealthHandler(pgxdb, c)

	runAsync("sync_heartbeat", s.syncHeartbeat)
	return s, nil
}

// syncHeartbeat reconciles the heartbeat with the stored credentials after
// a restart.
func (s *Service) syncHeartbeat(ctx context.Context) error {
	creds, err := s.credentials.Credentials(ctx)
	if err != nil {
		return err
	}
	return s.scheduler.Sync(ctx, creds.HasExternalAPIKey())
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
	s.pool.Release()
}
