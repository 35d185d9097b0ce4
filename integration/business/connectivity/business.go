package connectivity

import (
	"context"
	"time"

	"github.com/facebookgo/clock"

	"ottolink.app/integration/logthrottle"
	"ottolink.app/integration/model"
)

type Business interface {
	IsConnected(ctx context.Context) bool
	Status(ctx context.Context) model.ConnectivityStatus
	Tick(ctx context.Context, updatedBy string) bool
	TriggerImmediateCheck(ctx context.Context, reason string) bool
	ClearCache(ctx context.Context) error
}

// StatusCache holds the single TTL-bound verdict.
type StatusCache interface {
	Get(ctx context.Context) (model.ConnectivityCacheEntry, error)
	Put(ctx context.Context, entry model.ConnectivityCacheEntry) error
	Clear(ctx context.Context) error
}

// StateStore is the durable side: credentials and the last known verdict.
type StateStore interface {
	Credentials(ctx context.Context) (model.Credentials, error)
	LastKnownConnectionState(ctx context.Context) (bool, error)
	SetLastKnownConnectionState(ctx context.Context, connected bool) error
}

// Prober performs one authenticated reachability check.
type Prober interface {
	Probe(ctx context.Context) bool
}

type business struct {
	cache     StatusCache
	state     StateStore
	prober    Prober
	debouncer *Debouncer
	throttle  *logthrottle.Throttler
	clock     clock.Clock
	cacheTTL  time.Duration
}

// NewConnectivityBusiness wires the read path, the tick and the
// immediate-trigger gate. The debouncer is owned by the caller so that a
// single instance guards the whole process.
func NewConnectivityBusiness(
	cache StatusCache,
	state StateStore,
	prober Prober,
	debouncer *Debouncer,
	throttle *logthrottle.Throttler,
	clk clock.Clock,
	cacheTTL time.Duration,
) Business {
	return &business{
		cache:     cache,
		state:     state,
		prober:    prober,
		debouncer: debouncer,
		throttle:  throttle,
		clock:     clk,
		cacheTTL:  cacheTTL,
	}
}

// ClearCache drops the cached verdict.
func (b *business) ClearCache(ctx context.Context) error {
	return b.cache.Clear(ctx)
}
