package cachestore

import (
	"context"
	"errors"
	"time"

	"encore.dev/storage/cache"

	"ottolink.app/integration/model"
)

// Tokens stores connect token metadata and the callback claim.
type Tokens struct{}

// Put stores token metadata under digest for ttl.
func (Tokens) Put(ctx context.Context, digest string, token model.ConnectToken, ttl time.Duration) error {
	return ConnectTokenKeyspace.With(cache.ExpireIn(ttl)).Set(ctx, digest, token)
}

// Get returns the metadata stored under digest or model.ErrNotFound.
func (Tokens) Get(ctx context.Context, digest string) (model.ConnectToken, error) {
	token, err := ConnectTokenKeyspace.Get(ctx, digest)
	if errors.Is(err, cache.Miss) {
		return model.ConnectToken{}, model.ErrNotFound
	}
	return token, err
}

// Claim atomically takes the single-use claim for digest. It reports false
// if another caller already holds it.
func (Tokens) Claim(ctx context.Context, digest string, ttl time.Duration) (bool, error) {
	err := ConnectClaimKeyspace.With(cache.ExpireIn(ttl)).SetIfNotExists(ctx, digest, time.Now().UTC().Format(time.RFC3339Nano))
	if errors.Is(err, cache.KeyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Release drops the claim for digest so a failed callback can be retried.
func (Tokens) Release(ctx context.Context, digest string) error {
	_, err := ConnectClaimKeyspace.Delete(ctx, digest)
	return err
}

// Update rewrites token metadata without touching its remaining TTL.
func (Tokens) Update(ctx context.Context, digest string, token model.ConnectToken) error {
	err := ConnectTokenKeyspace.With(cache.KeepTTL).Replace(ctx, digest, token)
	if errors.Is(err, cache.Miss) {
		return model.ErrNotFound
	}
	return err
}

// SuccessFlags hands the callback result to the browser poller.
type SuccessFlags struct{}

// Put stores flag under digest for ttl.
func (SuccessFlags) Put(ctx context.Context, digest string, flag model.ConnectSuccessFlag, ttl time.Duration) error {
	return ConnectSuccessKeyspace.With(cache.ExpireIn(ttl)).Set(ctx, digest, flag)
}

// Take reads and deletes the flag in one atomic step.
func (SuccessFlags) Take(ctx context.Context, digest string) (model.ConnectSuccessFlag, error) {
	flag, err := ConnectSuccessKeyspace.GetAndDelete(ctx, digest)
	if errors.Is(err, cache.Miss) {
		return model.ConnectSuccessFlag{}, model.ErrNotFound
	}
	return flag, err
}

// IssueCounters backs the sliding-window issuance limiter.
type IssueCounters struct{}

// Increment bumps the counter for key and returns the new value.
func (IssueCounters) Increment(ctx context.Context, key model.IssueRateKey, ttl time.Duration) (int64, error) {
	return IssueRateKeyspace.With(cache.ExpireIn(ttl)).Increment(ctx, key, 1)
}

// Decrement takes back one increment of key.
func (IssueCounters) Decrement(ctx context.Context, key model.IssueRateKey) (int64, error) {
	return IssueRateKeyspace.With(cache.KeepTTL).Decrement(ctx, key, 1)
}

// Count returns the counter for key, zero if absent.
func (IssueCounters) Count(ctx context.Context, key model.IssueRateKey) (int64, error) {
	n, err := IssueRateKeyspace.Get(ctx, key)
	if errors.Is(err, cache.Miss) {
		return 0, nil
	}
	return n, err
}
