package connect

import (
	"context"
	"fmt"
	"time"

	"github.com/facebookgo/clock"

	"ottolink.app/integration/model"
)

// RateLimiter caps issuances per user over a rolling window using two fixed
// buckets. Any rolling window overlaps at most the current and the previous
// bucket, so admitting only while their sum stays within the limit never
// lets more than limit through.
type RateLimiter struct {
	counters CounterStore
	clock    clock.Clock
	limit    int
	window   time.Duration
}

func NewRateLimiter(counters CounterStore, clk clock.Clock, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counters: counters,
		clock:    clk,
		limit:    limit,
		window:   window,
	}
}

// Allow reports whether userID may issue now and, if so, counts the
// issuance. Denied attempts are not counted.
func (l *RateLimiter) Allow(ctx context.Context, userID string) (bool, error) {
	bucket := l.clock.Now().UnixNano() / int64(l.window)
	key := model.IssueRateKey{UserID: userID, Bucket: bucket}

	previous, err := l.counters.Count(ctx, model.IssueRateKey{UserID: userID, Bucket: bucket - 1})
	if err != nil {
		return false, fmt.Errorf("read rate bucket: %w", err)
	}
	if previous >= int64(l.limit) {
		return false, nil
	}

	current, err := l.counters.Increment(ctx, key, 2*l.window)
	if err != nil {
		return false, fmt.Errorf("increment rate bucket: %w", err)
	}
	if previous+current <= int64(l.limit) {
		return true, nil
	}

	if _, err := l.counters.Decrement(ctx, key); err != nil {
		return false, fmt.Errorf("roll back rate bucket: %w", err)
	}
	return false, nil
}
