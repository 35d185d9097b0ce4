// Package logthrottle suppresses repeated informational notices so a
// condition that persists across many requests is logged once per state
// change, or at most once per window.
package logthrottle

import (
	"time"

	"encore.dev/rlog"
	"github.com/facebookgo/clock"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Sink receives the notices that pass the throttle.
type Sink interface {
	Info(msg string, keysAndValues ...interface{})
}

type rlogSink struct{}

func (rlogSink) Info(msg string, keysAndValues ...interface{}) {
	rlog.Info(msg, keysAndValues...)
}

// RlogSink writes notices through rlog.
var RlogSink Sink = rlogSink{}

type notice struct {
	state   string
	at      time.Time
	emitted bool
}

type Throttler struct {
	clock  clock.Clock
	window time.Duration
	sink   Sink
	last   cmap.ConcurrentMap[string, notice]
}

func New(clk clock.Clock, window time.Duration, sink Sink) *Throttler {
	return &Throttler{
		clock:  clk,
		window: window,
		sink:   sink,
		last:   cmap.New[notice](),
	}
}

// Info logs msg for key unless the same state was logged for key within
// the window. It reports whether the notice was emitted.
func (t *Throttler) Info(key, state, msg string, keysAndValues ...interface{}) bool {
	now := t.clock.Now()
	res := t.last.Upsert(key, notice{state: state, at: now}, func(exist bool, prev, next notice) notice {
		if exist && prev.state == next.state && now.Sub(prev.at) < t.window {
			prev.emitted = false
			return prev
		}
		next.emitted = true
		return next
	})
	if !res.emitted {
		return false
	}
	t.sink.Info(msg, keysAndValues...)
	return true
}

// Reset forgets key so the next notice is emitted.
func (t *Throttler) Reset(key string) {
	t.last.Remove(key)
}
