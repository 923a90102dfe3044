// Package fileops implements the file-system workflow tasks: moving,
// copying and removing files or directory trees. Each task stores
// construction-time path defaults and accepts per-call overrides,
// validating the resolved values before touching the file system.
package fileops

import (
	"os"
	"path/filepath"
)

// resolve applies the argument-overrides-default rule shared by every
// task parameter: the override wins when non-empty, otherwise the
// construction-time default is used.
func resolve(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// finalTarget computes the destination an entry will end up at. Moving
// or copying into an existing directory places the entry inside it
// under the source's base name; any other target is used as given.
func finalTarget(sourcePath, targetPath string) string {
	if info, err := os.Stat(targetPath); err == nil && info.IsDir() {
		return filepath.Join(targetPath, filepath.Base(sourcePath))
	}
	return targetPath
}
