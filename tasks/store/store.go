package store

import (
	"context"

	"fileops-orchestrator/tasks"
)

// TaskStore defines the contract for task persistence
type TaskStore interface {
	Save(ctx context.Context, task *tasks.Task) error
	Get(ctx context.Context, id string) (*tasks.Task, error)
	Update(ctx context.Context, id string, status tasks.TaskStatus, result string) error
}
