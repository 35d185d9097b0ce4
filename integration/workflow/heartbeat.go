package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// HeartbeatWorkflowID is the single execution per install. Its existence is
// the scheduler's Scheduled state.
const HeartbeatWorkflowID = "ottolink-heartbeat"

// HeartbeatParams contains parameters for starting the heartbeat workflow
type HeartbeatParams struct {
	Interval    time.Duration `json:"interval"`
	TicksPerRun int           `json:"ticks_per_run"`
}

// Heartbeat runs a connectivity tick every Interval. After TicksPerRun
// ticks it continues as new to keep the event history bounded.
func Heartbeat(ctx workflow.Context, params HeartbeatParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting heartbeat workflow", "interval", params.Interval, "ticksPerRun", params.TicksPerRun)

	for i := 0; i < params.TicksPerRun; i++ {
		connected, err := tick(ctx)
		if err != nil {
			if temporal.IsCanceledError(err) {
				logger.Info("Heartbeat cancelled during tick")
				return nil
			}
			logger.Error("Heartbeat tick failed", "error", err)
		} else {
			logger.Info("Heartbeat tick completed", "connected", connected, "tick", i+1)
		}

		if err := workflow.Sleep(ctx, params.Interval); err != nil {
			if temporal.IsCanceledError(err) {
				logger.Info("Heartbeat cancelled")
				return nil
			}
			return err
		}
	}

	logger.Info("Heartbeat continuing as new", "ticks", params.TicksPerRun)
	return workflow.NewContinueAsNewError(ctx, Heartbeat, params)
}

// tick executes the Tick activity
func tick(ctx workflow.Context) (bool, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var connected bool
	err := workflow.ExecuteActivity(activityCtx, TickActivity).Get(ctx, &connected)
	return connected, err
}
