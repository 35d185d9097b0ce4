package cachestore

import (
	"context"
	"errors"

	"encore.dev/storage/cache"

	"ottolink.app/integration/model"
)

const connectivityKey = "status"

// ConnectivityStatus is the single-entry verdict cache.
type ConnectivityStatus struct{}

// Get returns the cached verdict or model.ErrNotFound.
func (ConnectivityStatus) Get(ctx context.Context) (model.ConnectivityCacheEntry, error) {
	entry, err := ConnectivityKeyspace.Get(ctx, connectivityKey)
	if errors.Is(err, cache.Miss) {
		return model.ConnectivityCacheEntry{}, model.ErrNotFound
	}
	return entry, err
}

// Put writes entry for the lifetime it was built with.
func (ConnectivityStatus) Put(ctx context.Context, entry model.ConnectivityCacheEntry) error {
	ttl := entry.CachedUntil.Sub(entry.Timestamp)
	if ttl <= 0 {
		return nil
	}
	return ConnectivityKeyspace.With(cache.ExpireIn(ttl)).Set(ctx, connectivityKey, entry)
}

// Clear drops the cached verdict.
func (ConnectivityStatus) Clear(ctx context.Context) error {
	_, err := ConnectivityKeyspace.Delete(ctx, connectivityKey)
	return err
}
