package cachestore

import (
	"context"
	"errors"
	"time"

	"encore.dev/storage/cache"

	"ottolink.app/integration/model"
)

// JWTs caches dashboard tokens.
type JWTs struct{}

// Get returns the entry for key or model.ErrNotFound.
func (JWTs) Get(ctx context.Context, key string) (model.JwtTokenCacheEntry, error) {
	entry, err := JWTKeyspace.Get(ctx, key)
	if errors.Is(err, cache.Miss) {
		return model.JwtTokenCacheEntry{}, model.ErrNotFound
	}
	return entry, err
}

// Put stores entry for ttl.
func (JWTs) Put(ctx context.Context, key string, entry model.JwtTokenCacheEntry, ttl time.Duration) error {
	return JWTKeyspace.With(cache.ExpireIn(ttl)).Set(ctx, key, entry)
}

// PublicHashes caches public share hashes.
type PublicHashes struct{}

// Get returns the entry for key or model.ErrNotFound.
func (PublicHashes) Get(ctx context.Context, key string) (model.PublicHashCacheEntry, error) {
	entry, err := PublicHashKeyspace.Get(ctx, key)
	if errors.Is(err, cache.Miss) {
		return model.PublicHashCacheEntry{}, model.ErrNotFound
	}
	return entry, err
}

// Put stores entry for ttl.
func (PublicHashes) Put(ctx context.Context, key string, entry model.PublicHashCacheEntry, ttl time.Duration) error {
	return PublicHashKeyspace.With(cache.ExpireIn(ttl)).Set(ctx, key, entry)
}
