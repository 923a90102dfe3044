package fileops

import (
	"fileops-orchestrator/errors"
)

// MoveTask relocates a file or directory from a source path to a target
// path. When the target is an existing directory, the entry is moved
// into it under the source's base name.
type MoveTask struct {
	// SourcePath and TargetPath are construction-time defaults; Run
	// arguments override them for a single invocation.
	SourcePath string
	TargetPath string
}

// NewMoveTask creates a move task with the given default paths. Empty
// strings mean "not provided" and must be supplied at Run time.
func NewMoveTask(sourcePath, targetPath string) *MoveTask {
	return &MoveTask{
		SourcePath: sourcePath,
		TargetPath: targetPath,
	}
}

// Run moves the entry at the resolved source path and returns the final
// target path. Validation happens before any file-system mutation: an
// empty resolved source or target fails with an invalid_input error
// naming the missing parameter.
func (t *MoveTask) Run(sourcePath, targetPath string) (string, error) {
	source := resolve(sourcePath, t.SourcePath)
	target := resolve(targetPath, t.TargetPath)

	if source == "" {
		return "", errors.NewInvalidInputError("no source_path provided")
	}
	if target == "" {
		return "", errors.NewInvalidInputError("no target_path provided")
	}

	dest := finalTarget(source, target)
	if err := moveEntry(source, dest); err != nil {
		return "", errors.NewIOFailureError("move failed", map[string]any{
			"source_path": source,
			"target_path": dest,
			"error":       err.Error(),
		})
	}

	return dest, nil
}
