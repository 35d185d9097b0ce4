package cachestore

import (
	"context"
	"errors"
	"time"

	"encore.dev/storage/cache"

	"ottolink.app/integration/model"
)

// InFlight holds markers for requests currently being processed.
type InFlight struct{}

// Mark sets the marker for key. It reports false if one already exists.
func (InFlight) Mark(ctx context.Context, key model.SingleUseKey, ttl time.Duration) (bool, error) {
	err := InFlightKeyspace.With(cache.ExpireIn(ttl)).SetIfNotExists(ctx, key, "processing")
	if errors.Is(err, cache.KeyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes the marker for key.
func (InFlight) Clear(ctx context.Context, key model.SingleUseKey) error {
	_, err := InFlightKeyspace.Delete(ctx, key)
	return err
}
