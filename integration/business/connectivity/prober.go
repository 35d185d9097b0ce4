package connectivity

import (
	"context"
	"io"
	"net/http"
	"time"

	"encore.dev/rlog"
	"github.com/facebookgo/clock"

	"ottolink.app/integration/config"
	"ottolink.app/integration/metrics"
	"ottolink.app/integration/model"
)

const maxProbeBody = 64 << 10

// ProbeCredentials supplies the bearer credential and records successful
// contact.
type ProbeCredentials interface {
	Credentials(ctx context.Context) (model.Credentials, error)
	TouchLastSuccessfulContact(ctx context.Context, at time.Time) error
}

// HTTPProber calls the platform heartbeat endpoint.
type HTTPProber struct {
	client *http.Client
	url    string
	creds  ProbeCredentials
	clock  clock.Clock
}

func NewHTTPProber(cfg config.Config, creds ProbeCredentials, clk clock.Clock) *HTTPProber {
	return &HTTPProber{
		client: &http.Client{Timeout: cfg.ProbeTimeout},
		url:    cfg.HeartbeatURL,
		creds:  creds,
		clock:  clk,
	}
}

// Probe reports whether the platform accepted the install's credential.
// Every failure collapses to false.
func (p *HTTPProber) Probe(ctx context.Context) bool {
	creds, err := p.creds.Credentials(ctx)
	if err != nil {
		rlog.Error("failed to load credentials for probe", "error", err)
		metrics.ProbeCounter.WithLabelValues("internal").Inc()
		return false
	}
	if creds.APIKey == "" {
		rlog.Debug("skipping probe, no plugin credential")
		metrics.ProbeCounter.WithLabelValues("no_credential").Inc()
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		rlog.Error("failed to build probe request", "error", err)
		metrics.ProbeCounter.WithLabelValues("internal").Inc()
		return false
	}
	req.Header.Set("Authorization", "Bearer "+creds.APIKey)
	req.Header.Set("Accept", "application/json")

	start := p.clock.Now()
	resp, err := p.client.Do(req)
	metrics.ProbeDuration.Observe(p.clock.Now().Sub(start).Seconds())
	if err != nil {
		rlog.Warn("heartbeat probe failed", "error", err)
		metrics.ProbeCounter.WithLabelValues(string(model.FailureTransport)).Inc()
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxProbeBody))

	if resp.StatusCode != http.StatusOK {
		rlog.Warn("heartbeat probe rejected", "status", resp.StatusCode)
		metrics.ProbeCounter.WithLabelValues(string(model.FailureRemote)).Inc()
		return false
	}

	if err := p.creds.TouchLastSuccessfulContact(ctx, p.clock.Now()); err != nil {
		rlog.Warn("failed to record last successful contact", "error", err)
	}
	metrics.ProbeCounter.WithLabelValues("ok").Inc()
	return true
}
