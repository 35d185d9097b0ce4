package connectivity

import (
	"context"
	"errors"
	"strconv"

	"encore.dev/rlog"

	"ottolink.app/integration/metrics"
	"ottolink.app/integration/model"
)

const fallbackNoticeKey = "connectivity_fallback"

// IsConnected answers from local state only; it never performs remote I/O.
func (b *business) IsConnected(ctx context.Context) bool {
	return b.Status(ctx).Connected
}

// Status is IsConnected with the provenance of the answer.
func (b *business) Status(ctx context.Context) model.ConnectivityStatus {
	status := b.status(ctx)
	metrics.StatusReadCounter.WithLabelValues(string(status.Source)).Inc()
	return status
}

func (b *business) status(ctx context.Context) model.ConnectivityStatus {
	creds, err := b.state.Credentials(ctx)
	if err != nil {
		rlog.Error("failed to load credentials", "error", err)
		return model.ConnectivityStatus{Source: model.ConnectivitySourceCold}
	}
	if !creds.HasExternalAPIKey() {
		return model.ConnectivityStatus{Source: model.ConnectivitySourceNoKey}
	}

	now := b.clock.Now()
	entry, err := b.cache.Get(ctx)
	switch {
	case err == nil && entry.Valid(now):
		return model.ConnectivityStatus{
			Connected:             entry.Status,
			Source:                model.ConnectivitySourceCache,
			CheckedAt:             &entry.Timestamp,
			CachedUntil:           &entry.CachedUntil,
			UpdatedBy:             entry.UpdatedBy,
			LastSuccessfulContact: creds.LastSuccessfulContact,
		}
	case err != nil && !errors.Is(err, model.ErrNotFound):
		rlog.Warn("failed to read connectivity cache", "error", err)
	}

	last, err := b.state.LastKnownConnectionState(ctx)
	if err == nil {
		b.throttle.Info(fallbackNoticeKey, strconv.FormatBool(last),
			"connectivity cache expired, serving last known state", "connected", last)
		return model.ConnectivityStatus{
			Connected:             last,
			Source:                model.ConnectivitySourceFallback,
			LastSuccessfulContact: creds.LastSuccessfulContact,
		}
	}
	if !errors.Is(err, model.ErrNotFound) {
		rlog.Warn("failed to read last known connection state", "error", err)
	}

	return model.ConnectivityStatus{
		Source:                model.ConnectivitySourceCold,
		LastSuccessfulContact: creds.LastSuccessfulContact,
	}
}
