package fileops

import (
	"fileops-orchestrator/errors"
)

// RemoveTask deletes a file, or a directory and all of its contents.
type RemoveTask struct {
	// RemovePath is a construction-time default; the Run argument
	// overrides it for a single invocation.
	RemovePath string
}

// NewRemoveTask creates a remove task with the given default path.
func NewRemoveTask(removePath string) *RemoveTask {
	return &RemoveTask{RemovePath: removePath}
}

// Run deletes the entry at the resolved path. Success means the path no
// longer exists; deleting a non-existent path fails with an io_failure.
func (t *RemoveTask) Run(removePath string) error {
	path := resolve(removePath, t.RemovePath)

	if path == "" {
		return errors.NewInvalidInputError("no remove_path provided")
	}

	if err := removeEntry(path); err != nil {
		return errors.NewIOFailureError("remove failed", map[string]any{
			"remove_path": path,
			"error":       err.Error(),
		})
	}

	return nil
}
