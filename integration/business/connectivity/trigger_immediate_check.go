package connectivity

import (
	"context"

	"encore.dev/rlog"

	"ottolink.app/integration/metrics"
	"ottolink.app/integration/model"
)

// TriggerImmediateCheck re-probes synchronously after a credential change,
// unless a check ran within the debounce window.
func (b *business) TriggerImmediateCheck(ctx context.Context, reason string) bool {
	connected, ran := b.debouncer.Do(func() bool {
		if err := b.cache.Clear(ctx); err != nil {
			rlog.Warn("failed to clear connectivity cache", "error", err)
		}
		return b.Tick(ctx, model.UpdatedByImmediate)
	})

	outcome := "debounced"
	if ran {
		outcome = "ran"
	}
	metrics.TriggerCounter.WithLabelValues(outcome).Inc()
	rlog.Info("immediate connectivity check", "reason", reason, "outcome", outcome, "connected", connected)
	return connected
}
