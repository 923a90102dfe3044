package fileops

import (
	"fileops-orchestrator/errors"
)

// CopyTask copies a file or recursively copies a directory tree from a
// source path to a target path. The source is left untouched. When the
// target is an existing directory, the entry is copied into it under
// the source's base name.
type CopyTask struct {
	// SourcePath and TargetPath are construction-time defaults; Run
	// arguments override them for a single invocation.
	SourcePath string
	TargetPath string
}

// NewCopyTask creates a copy task with the given default paths. Empty
// strings mean "not provided" and must be supplied at Run time.
func NewCopyTask(sourcePath, targetPath string) *CopyTask {
	return &CopyTask{
		SourcePath: sourcePath,
		TargetPath: targetPath,
	}
}

// Run copies the entry at the resolved source path and returns the
// final target path. Copying a directory onto an already existing
// target directory fails with an io_failure.
func (t *CopyTask) Run(sourcePath, targetPath string) (string, error) {
	source := resolve(sourcePath, t.SourcePath)
	target := resolve(targetPath, t.TargetPath)

	if source == "" {
		return "", errors.NewInvalidInputError("no source_path provided")
	}
	if target == "" {
		return "", errors.NewInvalidInputError("no target_path provided")
	}

	dest := finalTarget(source, target)
	if err := copyEntry(source, dest); err != nil {
		return "", errors.NewIOFailureError("copy failed", map[string]any{
			"source_path": source,
			"target_path": dest,
			"error":       err.Error(),
		})
	}

	return dest, nil
}
