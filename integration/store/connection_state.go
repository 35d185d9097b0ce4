package store

import (
	"context"
	"strconv"

	"ottolink.app/integration/model"
)

// LastKnownConnectionState returns the durable fallback verdict or
// model.ErrNotFound before the first tick.
func (s *Store) LastKnownConnectionState(ctx context.Context) (bool, error) {
	raw, err := s.get(ctx, model.OptionLastKnownConnectionState)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, model.ErrNotFound
	}
	return v, nil
}

// SetLastKnownConnectionState overwrites the durable fallback verdict.
func (s *Store) SetLastKnownConnectionState(ctx context.Context, connected bool) error {
	return s.set(ctx, model.OptionLastKnownConnectionState, strconv.FormatBool(connected))
}
