package runners

import (
	"context"

	"fileops-orchestrator/errors"
	"fileops-orchestrator/tasks"
	handlerRegistry "fileops-orchestrator/tasks/registry"
)

var _ Runner = (*SynchronousRunner)(nil)

// SynchronousRunner executes tasks in-process and blocks until completion.
// It delegates execution to the appropriate TaskHandler based on task.Type.
type SynchronousRunner struct {
	registry *handlerRegistry.HandlerRegistry
}

// NewSynchronousRunner constructs a new SynchronousRunner with a handler registry.
func NewSynchronousRunner(r *handlerRegistry.HandlerRegistry) *SynchronousRunner {
	return &SynchronousRunner{registry: r}
}

func (r *SynchronousRunner) Run(ctx context.Context, task *tasks.Task) error {
	handler, ok := r.registry.Get(task.Type)
	if !ok {
		return errors.NewNotFoundError("no handler registered for task type: " + task.Type)
	}

	if err := handler.Run(ctx, task); err != nil {
		// Preserve structured errors, wrap others as I/O failures
		if _, ok := errors.IsTaskError(err); ok {
			return err
		}
		return errors.NewIOFailureError("task execution failed", map[string]any{
			"task_id":   task.ID,
			"task_type": task.Type,
			"error":     err.Error(),
		})
	}

	return nil
}
