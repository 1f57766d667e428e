//go:build linux || darwin

package native

import (
	"golang.org/x/sys/unix"
)

func copyStat(st *unix.Stat_t, cs *CommonStat) {
	*cs = CommonStat{
		Inode:            uint64(st.Ino),
		Mode:             uint32(st.Mode),
		UserID:           st.Uid,
		GroupID:          st.Gid,
		HardlinkCount:    uint32(st.Nlink),
		Size:             st.Size,
		AccessTime:       int64(st.Atim.Sec),
		ModifiedTime:     int64(st.Mtim.Sec),
		StatusChangeTime: int64(st.Ctim.Sec),
		BlockSize:        int64(st.Blksize),
		DeviceID:         uint64(st.Dev),
		NumberOfBlocks:   st.Blocks,
	}

	cs.setFlags()
}

// GetCommonStat fills cs from stat(2), following a terminal symlink.
func GetCommonStat(path string, cs *CommonStat) error {
	var st unix.Stat_t

	if err := unix.Stat(path, &st); err != nil {
		return err
	}

	copyStat(&st, cs)

	return nil
}

// GetCommonLStat fills cs from lstat(2).
func GetCommonLStat(path string, cs *CommonStat) error {
	var st unix.Stat_t

	if err := unix.Lstat(path, &st); err != nil {
		return err
	}

	copyStat(&st, cs)

	return nil
}

// GetLinkCount returns the number of hard links to path itself.
func GetLinkCount(path string) (int, error) {
	var st unix.Stat_t

	if err := unix.Lstat(path, &st); err != nil {
		return 0, err
	}

	return int(st.Nlink), nil
}

// GetInodeData returns the device and inode numbers of path.
func GetInodeData(path string) (uint64, uint64, error) {
	var st unix.Stat_t

	if err := unix.Stat(path, &st); err != nil {
		return 0, 0, err
	}

	return uint64(st.Dev), uint64(st.Ino), nil
}

// IsSameFileSystemItem reports whether both paths resolve to the same inode
// on the same device. Any stat failure yields false.
func IsSameFileSystemItem(pathOne, pathTwo string) bool {
	var a, b unix.Stat_t

	if err := unix.Stat(pathOne, &a); err != nil {
		return false
	}
	if err := unix.Stat(pathTwo, &b); err != nil {
		return false
	}

	return a.Dev == b.Dev && a.Ino == b.Ino
}

// IsExecutable reports whether the calling process may execute path.
func IsExecutable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}

// FollowSymLink returns the target stored in the symbolic link at path.
func FollowSymLink(path string) (string, error) {
	for size := 256; ; size *= 2 {
		buf := make([]byte, size)

		n, err := unix.Readlink(path, buf)
		if err != nil {
			return "", err
		}

		if n < size {
			return string(buf[:n]), nil
		}
	}
}

// CreateSymLink creates path as a symbolic link pointing to target.
func CreateSymLink(path, target string) error {
	return unix.Symlink(target, path)
}

// CreateHardLink creates path as a new hard link to target.
func CreateHardLink(path, target string) error {
	return unix.Link(target, path)
}

// SetDate sets the system clock. Requires privileges.
func SetDate(tm *UnixTm) error {
	tv := unix.NsecToTimeval(tm.Time().UnixNano())

	return unix.Settimeofday(&tv)
}
