package handlers

import (
	"context"
	"encoding/json"

	"fileops-orchestrator/errors"
	"fileops-orchestrator/logger"
	"fileops-orchestrator/tasks"
	"fileops-orchestrator/tasks/fileops"
)

var _ TaskHandler = (*CopyHandler)(nil)

// CopyHandler executes a "copy" task: it duplicates a file or directory
// tree and records the final target path as the task result. The source
// is left in place.
type CopyHandler struct {
	task   *fileops.CopyTask
	logger *logger.Logger
}

// NewCopyHandler returns a production-ready CopyHandler.
func NewCopyHandler(lg *logger.Logger) *CopyHandler {
	return &CopyHandler{task: fileops.NewCopyTask("", ""), logger: lg}
}

type CopyPayload struct {
	SourcePath string `json:"source_path"`
	TargetPath string `json:"target_path"`
}

func (h *CopyHandler) Run(ctx context.Context, task *tasks.Task) error {
	var p CopyPayload
	if err := json.Unmarshal(task.Payload, &p); err != nil {
		return errors.NewInvalidInputError("invalid copy payload", map[string]any{
			"task_id": task.ID,
			"error":   err.Error(),
		})
	}

	h.logger.Task(task.ID, "executing copy task", map[string]any{
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
