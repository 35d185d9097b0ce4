package connectivity

import (
	"context"

	"encore.dev/rlog"

	"ottolink.app/integration/metrics"
	"ottolink.app/integration/model"
)

// Tick probes (when a key is configured) and records the verdict in both
// the status cache and the durable last-known state.
func (b *business) Tick(ctx context.Context, updatedBy string) bool {
	creds, err := b.state.Credentials(ctx)
	if err != nil {
		rlog.Error("failed to load credentials for tick", "error", err)
		return false
	}

	connected := false
	if creds.HasExternalAPIKey() {
		connected = b.prober.Probe(ctx)
	} else {
		rlog.Debug("no external api key, recording disconnected without probing")
	}

	b.record(ctx, connected, updatedBy)
	return connected
}

func (b *business) record(ctx context.Context, connected bool, updatedBy string) {
	entry := model.NewConnectivityCacheEntry(connected, b.clock.Now(), b.cacheTTL, updatedBy)
	if err := b.cache.Put(ctx, entry); err != nil {
		rlog.Error("failed to write connectivity cache", "error", err)
	}
	if err := b.state.SetLastKnownConnectionState(ctx, connected); err != nil {
		rlog.Error("failed to write last known connection state", "error", err)
	}
	metrics.ConnectedGauge.Set(metrics.BoolGauge(connected))
	b.throttle.Reset(fallbackNoticeKey)
}
