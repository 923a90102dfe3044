package fileops

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// moveEntry relocates a file or directory. Rename is attempted first;
// cross-device moves fall back to a full copy followed by removal of
// the source.
func moveEntry(source, target string) error {
	err := os.Rename(source, target)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return err
	}

	if err := copyEntry(source, target); err != nil {
		return err
	}
	return removeEntry(source)
}

// copyEntry copies a single file, recreates a symlink, or recursively
// copies a directory tree, preserving permission bits.
func copyEntry(source, target string) error {
	info, err := os.Lstat(source)
	if err != nil {
		return err
	}

	switch {
	case info.IsDir():
		return copyTree(source, target)
	case info.Mode()&os.ModeSymlink != 0:
		return copySymlink(source, target)
	default:
		return copyFile(source, target, info.Mode().Perm())
	}
}

// copyTree duplicates an entire directory subtree. The target directory
// must not already exist.
func copyTree(source, target string) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return err
	}

	if err := os.Mkdir(target, info.Mode().Perm()); err != nil {
		return err
	}

	for _, entry := range entries {
		src := filepath.Join(source, entry.Name())
		dst := filepath.Join(target, entry.Name())
		if err := copyEntry(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(source, target string, perm os.FileMode) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copySymlink(source, target string) error {
	dest, err := os.Readlink(source)
	if err != nil {
		return err
	}
	return os.Symlink(dest, target)
}

// removeEntry deletes a single file, or a directory and everything
// beneath it. A missing path is an error.
func removeEntry(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}
