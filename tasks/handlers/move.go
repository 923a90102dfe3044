package handlers

import (
	"context"
	"encoding/json"

	"fileops-orchestrator/errors"
	"fileops-orchestrator/logger"
	"fileops-orchestrator/tasks"
	"fileops-orchestrator/tasks/fileops"
)

var _ TaskHandler = (*MoveHandler)(nil)

// MoveHandler executes a "move" task: it relocates a file or directory
// and records the final target path as the task result.
type MoveHandler struct {
	task   *fileops.MoveTask
	logger *logger.Logger
}

// NewMoveHandler returns a production-ready MoveHandler. Payload values
// act as the per-call path overrides of the underlying move task.
func NewMoveHandler(lg *logger.Logger) *MoveHandler {
	return &MoveHandler{task: fileops.NewMoveTask("", ""), logger: lg}
}

type MovePayload struct {
	SourcePath string `json:"source_path"`
	TargetPath string `json:"target_path"`
}

func (h *MoveHandler) Run(ctx context.Context, task *tasks.Task) error {
	var p MovePayload
	if err := json.Unmarshal(task.Payload, &p); err != nil {
		return errors.NewInvalidInputError("invalid move payload", map[string]any{
			"task_id": task.ID,
			"error":   err.Error(),
		})
	}

	h.logger.Task(task.ID, "executing move task", map[string]any{
		"source_path": p.SourcePath,
		"target_path": p.TargetPath,
	})

	result, err := h.task.Run(p.SourcePath, p.TargetPath)
	if err != nil {
		return err
	}

	task.Result = result
	return nil
}
