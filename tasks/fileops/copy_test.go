package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"

	apperrors "fileops-orchestrator/errors"
)

func TestCopyTask_Initialization(t *testing.T) {
	c := NewCopyTask("source", "target")
	assert.Equal(t, "source", c.SourcePath)
	assert.Equal(t, "target", c.TargetPath)

	c = NewCopyTask("", "")
	assert.Equal(t, "", c.SourcePath)
	assert.Equal(t, "", c.TargetPath)
}

func TestCopyTask_SourcePathNotProvided(t *testing.T) {
	c := NewCopyTask("", "")

	_, err := c.Run("", "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no source_path provided")

	taskErr, ok := apperrors.IsTaskError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.InvalidInputError, taskErr.Type)
}

func TestCopyTask_TargetPathNotProvided(t *testing.T) {
	c := NewCopyTask("lala", "")

	_, err := c.Run("", "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "no target_path provided")

	taskErr, ok := apperrors.IsTaskError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.InvalidInputError, taskErr.Type)
}

func TestCopyTask_CopyFileToDirectory(t *testing.T) {
	tmp := t.TempDir()
	source := writeTestFile(t, filepath.Join(tmp, "source", "test"), []byte("test"))

	c := NewCopyTask(source, tmp)
	res, err := c.Run("", "")
	require.NoError(t, err)

	expected := filepath.Join(tmp, "test")
	assert.Equal(t, expected, res)

	info, err := os.Stat(expected)
	require.NoError(t, err)
	assert.Assert(t, info.Mode().IsRegular())

	// Source must remain, unchanged.
	data, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t, "test", string(data))
}

func TestCopyTask_CopyFileToFile(t *testing.T) {
	tmp := t.TempDir()
	source := writeTestFile(t, filepath.Join(tmp, "source", "test"), []byte("test"))
	target := filepath.Join(tmp, "out")

	c := NewCopyTask(source, target)
	res, err := c.Run("", "")
	require.NoError(t, err)
	assert.Equal(t, target, res)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "test", string(data))

	_, err = os.Stat(source)
	assert.NilError(t, err, "source should still exist")
}

func TestCopyTask_CopyDirectoryToNewPath(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "source", "test")
	require.NoError(t, os.MkdirAll(source, 0o755))

	c := NewCopyTask(source, "")
	res, err := c.Run("", filepath.Join(tmp, "test2"))
	require.NoError(t, err)

	expected := filepath.Join(tmp, "test2")
	assert.Equal(t, expected, res)

	info, err := os.Stat(expected)
	require.NoError(t, err)
	assert.Assert(t, info.IsDir())

	_, err = os.Stat(source)
	assert.NilError(t, err, "source should still exist")
}

func TestCopyTask_CopyDirectoryTree(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "tree")
	writeTestFile(t, filepath.Join(source, "a.txt"), []byte("alpha"))
	writeTestFile(t, filepath.Join(source, "sub", "b.txt"), []byte("beta"))

	c := NewCopyTask(source, filepath.Join(tmp, "tree-copy"))
	res, err := c.Run("", "")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(res, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))

	data, err = os.ReadFile(filepath.Join(res, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "beta", string(data))
}

func TestCopyTask_ExistingTargetDirectoryFails(t *testing.T) {
	tmp := t.TempDir()
	source := filepath.Join(tmp, "source")
	target := filepath.Join(tmp, "target")
	require.NoError(t, os.MkdirAll(source, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(target, "source"), 0o755))

	// finalTarget resolves to target/source, which already exists; the
	// tree copy refuses to overwrite it.
	c := NewCopyTask(source, target)
	_, err := c.Run("", "")
	require.Error(t, err)

	taskErr, ok := apperrors.IsTaskError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.IOFailureError, taskErr.Type)
}
