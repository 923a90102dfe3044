package handlers

import (
	"context"
	"encoding/json"

	"fileops-orchestrator/errors"
	"fileops-orchestrator/logger"
	"fileops-orchestrator/tasks"
	"fileops-orchestrator/tasks/fileops"
)

var _ TaskHandler = (*RemoveHandler)(nil)

// RemoveHandler executes a "remove" task: it deletes a file or an
// entire directory tree. Remove produces no path result.
type RemoveHandler struct {
	task   *fileops.RemoveTask
	logger *logger.Logger
}

// NewRemoveHandler returns a production-ready RemoveHandler.
func NewRemoveHandler(lg *logger.Logger) *RemoveHandler {
	return &RemoveHandler{task: fileops.NewRemoveTask(""), logger: lg}
}

type RemovePayload struct {
	RemovePath string `json:"remove_path"`
}

func (h *RemoveHandler) Run(ctx context.Context, task *tasks.Task) error {
	var p RemovePayload
	if err := json.Unmarshal(task.Payload, &p); err != nil {
		return errors.NewInvalidInputError("invalid remove payload", map[string]any{
			"task_id": task.ID,
			"error":   err.Error(),
		})
	}

	h.logger.Task(task.ID, "executing remove task", map[string]any{
		"remove_path": p.RemovePath,
	})

	if err := h.task.Run(p.RemovePath); err != nil {
		return err
	}

	task.Result = "removed: " + p.RemovePath
	return nil
}
