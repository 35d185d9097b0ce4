package integration

import (
	"context"
	"net/http"
	"time"

	"github.com/heptiolabs/healthcheck"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"

	"ottolink.app/integration/metrics"
)

const (
	healthTimeout = 2 * time.Second
	maxGoroutines = 10000
)

// newHealthHandler wires liveness and readiness checks.
func newHealthHandler(db *pgxpool.Pool, c client.Client) healthcheck.Handler {
	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(maxGoroutines))
	health.AddReadinessCheck("database", healthcheck.Timeout(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
		defer cancel()
		return db.Ping(ctx)
	}, healthTimeout))
	health.AddReadinessCheck("temporal", healthcheck.Timeout(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
		defer cancel()
		_, err := c.CheckHealth(ctx, &client.CheckHealthRequest{})
		return err
	}, healthTimeout))
	return health
}

//encore:api public raw method=GET path=/healthz
func (s *Service) Healthz(w http.ResponseWriter, req *http.Request) {
	s.health.LiveEndpoint(w, req)
}

//encore:api public raw method=GET path=/readyz
func (s *Service) Readyz(w http.ResponseWriter, req *http.Request) {
	s.health.ReadyEndpoint(w, req)
}

//encore:api public raw method=GET path=/metrics
func (s *Service) Metrics(w http.ResponseWriter, req *http.Request) {
	metrics.Handler().ServeHTTP(w, req)
}
