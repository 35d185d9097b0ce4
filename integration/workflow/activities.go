package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"ottolink.app/integration/model"
)

// Ticker is the connectivity operation the heartbeat drives.
type Ticker interface {
	Tick(ctx context.Context, updatedBy string) bool
}

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Ticker Ticker
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(ticker Ticker) {
	activityDeps = &ActivityDependencies{
		Ticker: ticker,
	}
}

// TickActivity probes the platform and records the verdict.
func TickActivity(ctx context.Context) (bool, error) {
	logger := activity.GetLogger(ctx)

	if activityDeps == nil || activityDeps.Ticker == nil {
		logger.Error("Activity dependencies not set")
		return false, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	connected := activityDeps.Ticker.Tick(ctx, model.UpdatedByScheduler)
	logger.Info("Processed heartbeat tick", "connected", connected)
	return connected, nil
}
