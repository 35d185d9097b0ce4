package integration

import (
	"context"
	"time"

	"encore.dev/rlog"
	"github.com/panjf2000/ants/v2"
)

const asyncTimeout = 30 * time.Second

// asyncPool bounds background work. Nil means plain goroutines.
var asyncPool *ants.Pool

// runAsync is an indirection over safeAsync so tests can override
// asynchronous behavior and execute operations synchronously.
var runAsync = safeAsync

// safeAsync runs fn on the async pool with a timeout and structured error
// logging.
func safeAsync(op string, fn func(ctx context.Context) error) {
	task := func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}

	if asyncPool == nil {
		go task()
		return
	}
	if err := asyncPool.Submit(task); err != nil {
		rlog.Warn("async pool saturated, running on a fresh goroutine", "op", op, "error", err)
		go task()
	}
}
