package connectivity

import (
	"sync"
	"time"

	"github.com/facebookgo/clock"
	"golang.org/x/sync/singleflight"
)

// Debouncer lets at most one run through per window. Callers inside the
// window get the previous result; callers that overlap a run share it.
type Debouncer struct {
	clock  clock.Clock
	window time.Duration
	group  singleflight.Group

	mu      sync.Mutex
	hasRun  bool
	lastRun time.Time
	last    bool
}

func NewDebouncer(clk clock.Clock, window time.Duration) *Debouncer {
	return &Debouncer{clock: clk, window: window}
}

type debounced struct {
	result bool
	ran    bool
}

// Do runs fn unless a run finished within the window. It returns the
// result and whether a run executed for this call, possibly shared with
// overlapping callers.
func (d *Debouncer) Do(fn func() bool) (bool, bool) {
	if result, ok := d.recent(); ok {
		return result, false
	}

	v, _, _ := d.group.Do("run", func() (interface{}, error) {
		if result, ok := d.recent(); ok {
			return debounced{result: result}, nil
		}
		result := fn()

		d.mu.Lock()
		d.hasRun = true
		d.lastRun = d.clock.Now()
		d.last = result
		d.mu.Unlock()

		return debounced{result: result, ran: true}, nil
	})
	out := v.(debounced)
	return out.result, out.ran
}

func (d *Debouncer) recent() (bool, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.hasRun && d.clock.Now().Sub(d.lastRun) < d.window {
		return d.last, true
	}
	return false, false
}
