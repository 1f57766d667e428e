package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTempDir(t *testing.T) {
	root := t.TempDir()
	d := NewTempDir(root, "osal")

	path := d.Path()

	require.Equal(t, root, filepath.Dir(path))
	require.True(t, strings.HasPrefix(filepath.Base(path), "osal-"))
	require.DirExists(t, path)

	// Stable across calls
	require.Equal(t, path, d.Path())

	require.NoError(t, d.Remove())
	require.NoDirExists(t, path)

	// Created again with a new name
	again := d.Path()
	require.DirExists(t, again)
	require.NotEqual(t, path, again)
}

func TestTempDirRecreatedWhenDeleted(t *testing.T) {
	d := NewTempDir(t.TempDir(), "osal")

	path := d.Path()
	require.NoError(t, os.RemoveAll(path))

	require.Equal(t, path, d.Path())
	require.DirExists(t, path)
}

func TestTempDirFallsBackToRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, nil, 0o644))

	d := NewTempDir(root, "osal")

	require.Equal(t, root, d.Path())
}

func TestRemoveUnusedTempDir(t *testing.T) {
	d := NewTempDir(t.TempDir(), "osal")

	require.NoError(t, d.Remove())
}
