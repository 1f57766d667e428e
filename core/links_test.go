//go:build linux || darwin

package core

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsHardLinkDirectoryMakesNoNativeCall(t *testing.T) {
	// The mock has no expectations: any bridge call fails the test.
	p, _ := newMockPlatform(t)

	dir := t.TempDir()

	fi, err := os.Lstat(dir)
	require.NoError(t, err)

	ok, err := p.IsHardLink(dir, fi)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = p.IsHardLink(filepath.Join(dir, "missing"), nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGetLinkType(t *testing.T) {
	p, bridge := newMockPlatform(t)

	dir := t.TempDir()
	fname := filepath.Join(dir, "file")
	link := filepath.Join(dir, "link")

	require.NoError(t, os.WriteFile(fname, nil, 0o644))
	require.NoError(t, os.Symlink(fname, link))

	fileInfo, err := os.Lstat(fname)
	require.NoError(t, err)

	linkInfo, err := os.Lstat(link)
	require.NoError(t, err)

	bridge.EXPECT().LinkCount(fname).Return(2, nil)

	lt, err := p.GetLinkType(fname, fileInfo)
	require.NoError(t, err)
	require.Equal(t, LinkTypeHard, lt)

	// Symbolic wins without asking for the link count
	lt, err = p.GetLinkType(link, linkInfo)
	require.NoError(t, err)
	require.Equal(t, LinkTypeSymbolic, lt)

	bridge.EXPECT().LinkCount(fname).Return(1, nil)

	lt, err = p.GetLinkType(fname, fileInfo)
	require.NoError(t, err)
	require.Empty(t, lt)
}

func TestIsHardLinkNativeFailure(t *testing.T) {
	p, bridge := newMockPlatform(t)

	fname := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(fname, nil, 0o644))

	fi, err := os.Lstat(fname)
	require.NoError(t, err)

	bridge.EXPECT().LinkCount(fname).Return(0, syscall.EACCES)

	_, err = p.IsHardLink(fname, fi)
	require.True(t, IsNativeCallFailed(err))

	errno, _ := Errno(err)
	require.Equal(t, syscall.EACCES, errno)
}

func TestLinksHost(t *testing.T) {
	p := NewPlatform(nil, nil)

	dir := t.TempDir()
	fname := filepath.Join(dir, "file")
	sym := filepath.Join(dir, "sym")
	hard := filepath.Join(dir, "hard")

	require.NoError(t, os.WriteFile(fname, nil, 0o644))
	require.NoError(t, p.CreateSymbolicLink(sym, fname))
	require.NoError(t, p.CreateHardLink(hard, fname))

	target, err := p.LinkTarget(sym)
	require.NoError(t, err)
	require.Equal(t, fname, target)

	require.True(t, p.IsSameFileSystemItem(fname, hard))
	require.False(t, p.IsSameFileSystemItem(fname, dir))

	fi, err := os.Lstat(hard)
	require.NoError(t, err)

	ok, err := p.IsHardLink(hard, fi)
	require.NoError(t, err)
	require.True(t, ok)

	dev1, ino1, err := p.InodeData(fname)
	require.NoError(t, err)

	dev2, ino2, err := p.InodeData(hard)
	require.NoError(t, err)
	require.Equal(t, dev1, dev2)
	require.Equal(t, ino1, ino2)

	err = p.CreateSymbolicLink(sym, fname)
	require.True(t, IsNativeCallFailed(err))

	errno, _ := Errno(err)
	require.Equal(t, syscall.EEXIST, errno)
}
