package execution

import (
	"context"

	"fileops-orchestrator/logger"
	"fileops-orchestrator/tasks"
	taskContext "fileops-orchestrator/tasks/context"
	"fileops-orchestrator/tasks/runners"
)

// ExecutionWorkflow orchestrates the complete task execution lifecycle.
// This abstraction enables different execution strategies (sync, async, retry, etc.)
// without changing the orchestrator's interface.
type ExecutionWorkflow interface {
	Execute(ctx context.Context, task *tasks.Task) error
}

// DefaultExecutionWorkflow implements synchronous execution with proper error handling.
// Components are injected to enable testing and future strategy variations.
type DefaultExecutionWorkflow struct {
	runner        runners.Runner // Executes the actual business logic
	stateManager  StateManager   // Manages persistence and state transitions
	resultHandler ResultHandler  // Formats results and handles error messages
	logger        *logger.Logger
}

var _ ExecutionWorkflow = (*DefaultExecutionWorkflow)(nil)

// NewDefaultExecutionWorkflow creates a workflow with dependency injection.
func NewDefaultExecutionWorkflow(
	runner runners.Runner,
	stateManager StateManager,
	resultHandler ResultHandler,
	logger *logger.Logger,
) *DefaultExecutionWorkflow {
	return &DefaultExecutionWorkflow{
		runner:        runner,
		stateManager:  stateManager,
		resultHandler: resultHandler,
		logger:        logger,
	}
}

// Execute runs the full lifecycle: transition to running, invoke the
// runner, then finalize state based on the outcome.
func (w *DefaultExecutionWorkflow) Execute(ctx context.Context, task *tasks.Task) error {
	execCtx := taskContext.NewExecutionContext(task)

	if err := w.stateManager.TransitionToRunning(ctx, execCtx); err != nil {
		return err
	}

	if err := w.runner.Run(ctx, task); err != nil {
		w.logger.Task(task.ID, "execution failed", map[string]any{
			"error": err.Error(),
		})

		execCtx.SetError(err)
		w.resultHandler.HandleFailure(execCtx)

		// Attempt state cleanup, but preserve the original execution error
		if transitionErr := w.stateManager.TransitionToFailed(ctx, execCtx); transitionErr != nil {
			w.logger.Error("failed to transition task to failed state", map[string]any{
				"task_id":          task.ID,
				"transition_error": transitionErr.Error(),
				"original_error":   err.Error(),
			})
		}

		return err
	}

	w.resultHandler.HandleSuccess(execCtx)
	if err := w.stateManager.TransitionToCompleted(ctx, execCtx); err != nil {
		// Log state transition failures but don't fail the operation since the business logic succeeded
		w.logger.Error("failed to transition task to completed state after successful execution", map[string]any{
			"task_id": task.ID,
			"error":   err.Error(),
		})
	}

	w.logger.Task(task.ID, "task completed", map[string]any{
		"status": task.Status.String(),
	})

	return nil
}

// AsyncExecutionWorkflow enqueues tasks for background processing.
// The task stays submitted; workers own the running/done/failed transitions.
type AsyncExecutionWorkflow struct {
	runner        runners.Runner // An enqueueing runner
	stateManager  StateManager
	resultHandler ResultHandler
	logger        *logger.Logger
}

var _ ExecutionWorkflow = (*AsyncExecutionWorkflow)(nil)

// NewAsyncExecutionWorkflow creates a workflow that defers execution to workers.
func NewAsyncExecutionWorkflow(
	runner runners.Runner,
	stateManager StateManager,
	resultHandler ResultHandler,
	logger *logger.Logger,
) *AsyncExecutionWorkflow {
	return &AsyncExecutionWorkflow{
		runner:        runner,
		stateManager:  stateManager,
		resultHandler: resultHandler,
		logger:        logger,
	}
}

// Execute validates and enqueues the task. Enqueue failures transition
// the task to failed; on success the task remains submitted until a
// worker picks it up.
func (w *AsyncExecutionWorkflow) Execute(ctx context.Context, task *tasks.Task) error {
	execCtx := taskContext.NewExecutionContext(task)

	if err := w.runner.Run(ctx, task); err != nil {
		w.logger.Task(task.ID, "failed to queue task", map[string]any{
			"error": err.Error(),
		})

		execCtx.SetError(err)
		w.resultHandler.HandleFailure(execCtx)

		if transitionErr := w.stateManager.TransitionToFailed(ctx, execCtx); transitionErr != nil {
			w.logger.Error("failed to transition task to failed state", map[string]any{
				"task_id":          task.ID,
				"transition_error": transitionErr.Error(),
				"original_error":   err.Error(),
			})
		}

		return err
	}

	w.logger.Task(task.ID, "task queued for background execution", map[string]any{
		"status": task.Status.String(),
	})

	return nil
}
