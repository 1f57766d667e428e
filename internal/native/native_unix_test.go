//go:build linux || darwin

package native

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestGetCommonStat(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "file")

	require.NoError(t, os.WriteFile(fname, []byte("hello"), 0o640))

	var cs CommonStat

	require.NoError(t, GetCommonStat(fname, &cs))
	require.Equal(t, int32(1), cs.IsFile)
	require.Equal(t, int32(0), cs.IsDirectory)
	require.Equal(t, int64(5), cs.Size)
	require.Equal(t, uint32(1), cs.HardlinkCount)
	require.Equal(t, uint32(os.Getuid()), cs.UserID)
	require.NotZero(t, cs.Inode)

	require.NoError(t, GetCommonStat(dir, &cs))
	require.Equal(t, int32(1), cs.IsDirectory)
}

func TestGetCommonLStatSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")

	require.NoError(t, os.WriteFile(target, nil, 0o644))
	require.NoError(t, CreateSymLink(link, target))

	var cs CommonStat

	require.NoError(t, GetCommonLStat(link, &cs))
	require.Equal(t, int32(1), cs.IsSymbolicLink)

	require.NoError(t, GetCommonStat(link, &cs))
	require.Equal(t, int32(1), cs.IsFile)

	dest, err := FollowSymLink(link)
	require.NoError(t, err)
	require.Equal(t, target, dest)
}

func TestGetCommonStatMissing(t *testing.T) {
	var cs CommonStat

	err := GetCommonStat(filepath.Join(t.TempDir(), "missing"), &cs)
	require.ErrorIs(t, err, unix.ENOENT)
}

func TestHardLinks(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")

	require.NoError(t, os.WriteFile(a, nil, 0o644))

	n, err := GetLinkCount(a)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.NoError(t, CreateHardLink(b, a))

	n, err = GetLinkCount(a)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.True(t, IsSameFileSystemItem(a, b))
	require.False(t, IsSameFileSystemItem(a, dir))

	devA, inoA, err := GetInodeData(a)
	require.NoError(t, err)
	devB, inoB, err := GetInodeData(b)
	require.NoError(t, err)
	require.Equal(t, devA, devB)
	require.Equal(t, inoA, inoB)
}

func TestIsExecutable(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "run.sh")

	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))
	require.True(t, IsExecutable(script))
}

func TestGetRLimit(t *testing.T) {
	var rl RLimit

	require.NoError(t, GetRLimit(unix.RLIMIT_NOFILE, &rl))
	require.LessOrEqual(t, rl.Current, rl.Maximum)
}

func TestUmaskSwap(t *testing.T) {
	old, err := Umask(0o027)
	require.NoError(t, err)

	prev, err := Umask(old)
	require.NoError(t, err)
	require.Equal(t, 0o027, prev)
}

func TestGetPPid(t *testing.T) {
	ppid, err := GetPPid(os.Getpid())
	require.NoError(t, err)
	require.Equal(t, os.Getppid(), ppid)

	uid, err := GetUIDFromPid(os.Getpid())
	require.NoError(t, err)
	require.Equal(t, uint32(os.Geteuid()), uid)
}

func TestGetThreadID(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	tid, err := GetThreadID()
	require.NoError(t, err)
	require.Positive(t, tid)

	again, err := GetThreadID()
	require.NoError(t, err)
	require.Equal(t, tid, again)
}
