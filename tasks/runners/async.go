package runners

import (
	"context"

	"fileops-orchestrator/errors"
	"fileops-orchestrator/tasks"
	taskContext "fileops-orchestrator/tasks/context"
	"fileops-orchestrator/tasks/queue"
	"fileops-orchestrator/tasks/registry"
)

var _ Runner = (*AsynchronousRunner)(nil)

// AsynchronousRunner validates tasks and enqueues them for background processing.
// Execution happens later on a worker; the task stays in the submitted state.
type AsynchronousRunner struct {
	queue    queue.TaskQueue
	registry *registry.HandlerRegistry
}

func NewAsynchronousRunner(queue queue.TaskQueue, registry *registry.HandlerRegistry) *AsynchronousRunner {
	return &AsynchronousRunner{queue: queue, registry: registry}
}

func (r *AsynchronousRunner) Run(ctx context.Context, task *tasks.Task) error {
	// Validate handler exists before queuing
	_, ok := r.registry.Get(task.Type)
	if !ok {
		return errors.NewNotFoundError("no handler registered for task type: " + task.Type)
	}

	// Handler exists, safe to queue for background processing
	execCtx := taskContext.NewExecutionContext(task)
	if err := r.queue.Enqueue(ctx, execCtx); err != nil {
		// Preserve structured errors, wrap others as internal failures
		if _, ok := errors.IsTaskError(err); ok {
			return err
		}
		return errors.NewInternalError("failed to enqueue task " + task.ID + ": " + err.Error())
	}

	return nil
}
