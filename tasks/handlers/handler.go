package handlers

import (
	"context"

	"fileops-orchestrator/tasks"
)

// TaskHandler defines the interface implemented by any executable task.
//
// This allows task-specific logic (e.g. move, copy, remove) to be
// encapsulated in modular handlers, decoupled from the task runner or
// transport layer.
type TaskHandler interface {
	Run(ctx context.Context, task *tasks.Task) error
}
