package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"fileops-orchestrator/errors"
	"fileops-orchestrator/logger"
	"fileops-orchestrator/tasks"
	"fileops-orchestrator/tasks/orchestrator/execution"
	"fileops-orchestrator/tasks/store"
)

// Orchestrator defines the contract for task orchestration services.
type Orchestrator interface {
	// SubmitTask creates and executes a new task from the provided type and payload.
	SubmitTask(ctx context.Context, taskType string, payload json.RawMessage) (*tasks.Task, error)

	// GetTask retrieves a task by ID from the underlying storage.
	GetTask(ctx context.Context, taskID string) (*tasks.Task, error)

	// GetTaskStatus returns just the status of a task for lightweight queries.
	// This is more efficient than GetTask when you only need the status.
	GetTaskStatus(ctx context.Context, taskID string) (tasks.TaskStatus, error)
}

// orchestrator is the single implementation that uses different workflow strategies.
// The behavior changes based on which workflow is injected (sync, async, etc.)
type orchestrator struct {
	store    store.TaskStore
	workflow execution.ExecutionWorkflow
	logger   *logger.Logger
}

var _ Orchestrator = (*orchestrator)(nil)

// NewOrchestrator constructs a new orchestrator with the specified workflow strategy.
func NewOrchestrator(store store.TaskStore, workflow execution.ExecutionWorkflow, lg *logger.Logger) Orchestrator {
	return &orchestrator{
		store:    store,
		workflow: workflow,
		logger:   lg,
	}
}

// SubmitTask creates and executes a new task using the configured workflow strategy.
func (o *orchestrator) SubmitTask(ctx context.Context, taskType string, payload json.RawMessage) (*tasks.Task, error) {
	task := tasks.NewTask(taskType, payload)

	// Persist initial task state
	if err := o.store.Save(ctx, task); err != nil {
		o.logger.Task(task.ID, "failed to save task", map[string]any{
			"error": err.Error(),
		})
		return task, errors.NewInternalError("failed to save task")
	}

	o.logger.Task(task.ID, "task submitted", map[string]any{
		"task_type":     task.Type,
		"workflow_type": fmt.Sprintf("%T", o.workflow),
		"payload_size":  len(task.Payload),
	})

	return task, o.workflow.Execute(ctx, task)
}

// GetTask retrieves a task by ID from the store.
func (o *orchestrator) GetTask(ctx context.Context, taskID string) (*tasks.Task, error) {
	task, err := o.store.Get(ctx, taskID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("task %s not found", taskID))
	}
	return task, nil
}

// GetTaskStatus returns just the status of a task for lightweight queries.
func (o *orchestrator) GetTaskStatus(ctx context.Context, taskID string) (tasks.TaskStatus, error) {
	task, err := o.GetTask(ctx, taskID)
	if err != nil {
		return "", err
	}
	return task.Status, nil
}
