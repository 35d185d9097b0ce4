package domain

import (
	"context"
	"errors"
	"fmt"

	"encore.dev/rlog"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"ottolink.app/integration/config"
	"ottolink.app/integration/workflow"
)

// SchedulerState is whether the recurring heartbeat is registered.
type SchedulerState string

const (
	SchedulerStateUnscheduled SchedulerState = "unscheduled"
	SchedulerStateScheduled   SchedulerState = "scheduled"
)

// Scheduler drives the heartbeat lifecycle from credential changes.
type Scheduler interface {
	State(ctx context.Context) (SchedulerState, error)
	Schedule(ctx context.Context) error
	Unschedule(ctx context.Context) error
	Sync(ctx context.Context, hasKey bool) error
}

// CacheClearer drops the connectivity verdict on unschedule.
type CacheClearer interface {
	ClearCache(ctx context.Context) error
}

// HeartbeatScheduler keeps exactly one heartbeat workflow running while an
// external API key is configured.
type HeartbeatScheduler struct {
	temporal  client.Client
	cache     CacheClearer
	taskQueue string
	params    workflow.HeartbeatParams
}

// NewHeartbeatScheduler creates a scheduler over a Temporal client
func NewHeartbeatScheduler(c client.Client, cache CacheClearer, cfg config.Config) *HeartbeatScheduler {
	return &HeartbeatScheduler{
		temporal:  c,
		cache:     cache,
		taskQueue: cfg.TaskQueue,
		params: workflow.HeartbeatParams{
			Interval:    cfg.HeartbeatInterval,
			TicksPerRun: cfg.HeartbeatTicksPerRun,
		},
	}
}

// State reports Scheduled while the heartbeat workflow is running.
func (s *HeartbeatScheduler) State(ctx context.Context) (SchedulerState, error) {
	resp, err := s.temporal.DescribeWorkflowExecution(ctx, workflow.HeartbeatWorkflowID, "")
	if err != nil {
		var notFound *serviceerror.NotFound
		if errors.As(err, &notFound) {
			return SchedulerStateUnscheduled, nil
		}
		return "", fmt.Errorf("describe workflow %s: %w", workflow.HeartbeatWorkflowID, err)
	}

	info := resp.GetWorkflowExecutionInfo()
	if info != nil && info.GetStatus() == enumspb.WORKFLOW_EXECUTION_STATUS_RUNNING {
		return SchedulerStateScheduled, nil
	}
	return SchedulerStateUnscheduled, nil
}

// Schedule starts the heartbeat workflow. Scheduling twice is a no-op.
func (s *HeartbeatScheduler) Schedule(ctx context.Context) error {
	options := client.StartWorkflowOptions{
		ID:                    workflow.HeartbeatWorkflowID,
		TaskQueue:             s.taskQueue,
		WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.Heartbeat, s.params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Debug("heartbeat already scheduled", "workflow_id", workflow.HeartbeatWorkflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflow.HeartbeatWorkflowID, err)
	}

	rlog.Info("heartbeat scheduled", "workflow_id", workflow.HeartbeatWorkflowID, "interval", s.params.Interval)
	return nil
}

// Unschedule cancels the heartbeat and clears the status cache so no stale
// verdict outlives the key.
func (s *HeartbeatScheduler) Unschedule(ctx context.Context) error {
	err := s.temporal.CancelWorkflow(ctx, workflow.HeartbeatWorkflowID, "")
	if err != nil {
		var notFound *serviceerror.NotFound
		if !errors.As(err, &notFound) {
			return fmt.Errorf("cancel workflow %s: %w", workflow.HeartbeatWorkflowID, err)
		}
	} else {
		rlog.Info("heartbeat unscheduled", "workflow_id", workflow.HeartbeatWorkflowID)
	}

	if err := s.cache.ClearCache(ctx); err != nil {
		return fmt.Errorf("clear connectivity cache: %w", err)
	}
	return nil
}

// Sync moves to Scheduled when a key is configured and to Unscheduled
// otherwise.
func (s *HeartbeatScheduler) Sync(ctx context.Context, hasKey bool) error {
	if hasKey {
		return s.Schedule(ctx)
	}
	return s.Unschedule(ctx)
}
