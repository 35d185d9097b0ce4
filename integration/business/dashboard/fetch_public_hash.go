package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"encore.dev/rlog"
	"github.com/cenkalti/backoff/v4"
	"github.com/tidwall/gjson"

	"ottolink.app/integration/metrics"
	"ottolink.app/integration/model"
)

const minProjectUUIDLength = 10

var (
	publicHashPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,}$`)
	publicHashFields  = []string{
		"public_hash",
		"publicHash",
		"hash",
		"public_share_hash",
		"data.public_hash",
		"project.public_hash",
	}
)

// FetchPublicHash returns the public share hash of an Otto project,
// retrying transient failures with exponential backoff.
func (b *business) FetchPublicHash(ctx context.Context, uuid, jwt string) (string, bool) {
	if len(uuid) < minProjectUUIDLength || strings.Count(jwt, ".") < 2 {
		return "", false
	}

	key := b.saltedKey("public_hash", uuid, b.siteID)
	entry, err := b.hashes.Get(ctx, key)
	if err == nil && entry.Hash != "" {
		metrics.CacheCounter.WithLabelValues("public_hash", "hit").Inc()
		return entry.Hash, true
	}
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		rlog.Warn("failed to read public hash cache", "error", err)
	}
	metrics.CacheCounter.WithLabelValues("public_hash", "miss").Inc()

	var hash string
	operation := func() error {
		h, err := b.requestPublicHash(ctx, uuid, jwt)
		if err != nil {
			return err
		}
		hash = h
		return nil
	}
	notify := func(err error, next time.Duration) {
		rlog.Warn("retrying public hash fetch", "project", uuid, "error", err, "backoff", next)
		metrics.RemoteRetryCounter.WithLabelValues("public_hash").Inc()
	}

	if err := backoff.RetryNotifyWithTimer(operation, b.retryPolicy(ctx), notify, b.timer); err != nil {
		rlog.Error("failed to fetch public hash", "project", uuid, "error", err)
		metrics.RemoteRequestCounter.WithLabelValues("public_hash", string(model.KindOf(err))).Inc()
		return "", false
	}
	metrics.RemoteRequestCounter.WithLabelValues("public_hash", "ok").Inc()

	if err := b.hashes.Put(ctx, key, model.PublicHashCacheEntry{Hash: hash}, b.hashTTL); err != nil {
		rlog.Warn("failed to cache public hash", "error", err)
	}
	return hash, true
}

// retryPolicy yields delays of initial, 2*initial, 4*initial ... capped at
// the max interval, for at most retryAttempts attempts.
func (b *business) retryPolicy(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = b.retryInitial
	exp.RandomizationFactor = 0
	exp.Multiplier = 2
	exp.MaxInterval = b.retryMax
	exp.MaxElapsedTime = 0
	exp.Reset()

	retries := b.retryAttempts - 1
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(retries)), ctx)
}

func (b *business) requestPublicHash(ctx context.Context, uuid, jwt string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/", b.projectsDomain, url.PathEscape(uuid))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", backoff.Permanent(&model.ConnectError{Kind: model.FailureInternal, Message: "build public hash request", Err: err})
	}
	req.Header.Set("Authorization", "Bearer "+jwt)
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", &model.ConnectError{Kind: model.FailureTransport, Message: "public hash request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", &model.ConnectError{Kind: model.FailureTransport, Message: "read public hash response", Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", model.NewConnectError(model.FailureRemote, fmt.Sprintf("projects endpoint returned %d", resp.StatusCode))
	default:
		return "", backoff.Permanent(model.NewConnectError(model.FailureRemote, fmt.Sprintf("projects endpoint returned %d", resp.StatusCode)))
	}

	if !gjson.ValidBytes(body) {
		return "", backoff.Permanent(model.NewConnectError(model.FailureRemote, "projects response is not json"))
	}
	res := gjson.ParseBytes(body)
	for _, field := range publicHashFields {
		if v := res.Get(field); v.Type == gjson.String && publicHashPattern.MatchString(v.Str) {
			return v.Str, nil
		}
	}
	return "", backoff.Permanent(model.NewConnectError(model.FailureRemote, "projects response has no public hash"))
}
