package native

import (
	"errors"
	"time"
)

// ErrUnsupported is returned by calls that have no implementation
// on the current operating system.
var ErrUnsupported = errors.ErrUnsupported

// Mode bits as defined by <sys/stat.h>. They are identical on Linux and macOS.
const (
	S_IFMT   = 0o170000
	S_IFSOCK = 0o140000
	S_IFLNK  = 0o120000
	S_IFREG  = 0o100000
	S_IFBLK  = 0o060000
	S_IFDIR  = 0o040000
	S_IFCHR  = 0o020000
	S_IFIFO  = 0o010000

	S_ISUID = 0o4000
	S_ISGID = 0o2000
	S_ISVTX = 0o1000
)

// CommonStatSize is the size in bytes of the CommonStat record.
const CommonStatSize = 120

// CommonStat is the stat record exchanged with the native layer.
//
// The layout is fixed: every field is naturally aligned and the struct
// has no padding, so it can be read or written with encoding/binary
// as a single 120-byte record.
type CommonStat struct {
	Inode             uint64
	Mode              uint32
	UserID            uint32
	GroupID           uint32
	HardlinkCount     uint32
	Size              int64
	AccessTime        int64 // seconds since the epoch
	ModifiedTime      int64
	StatusChangeTime  int64
	BlockSize         int64
	DeviceID          uint64
	NumberOfBlocks    int64
	IsDirectory       int32
	IsFile            int32
	IsSymbolicLink    int32
	IsBlockDevice     int32
	IsCharacterDevice int32
	IsNamedPipe       int32
	IsSocket          int32
	IsSetUID          int32
	IsSetGID          int32
	IsSticky          int32
}

// setFlags fills the boolean fields from the raw mode.
func (cs *CommonStat) setFlags() {
	b := func(v bool) int32 {
		if v {
			return 1
		}
		return 0
	}

	ftype := cs.Mode & S_IFMT

	cs.IsDirectory = b(ftype == S_IFDIR)
	cs.IsFile = b(ftype == S_IFREG)
	cs.IsSymbolicLink = b(ftype == S_IFLNK)
	cs.IsBlockDevice = b(ftype == S_IFBLK)
	cs.IsCharacterDevice = b(ftype == S_IFCHR)
	cs.IsNamedPipe = b(ftype == S_IFIFO)
	cs.IsSocket = b(ftype == S_IFSOCK)
	cs.IsSetUID = b(cs.Mode&S_ISUID != 0)
	cs.IsSetGID = b(cs.Mode&S_ISGID != 0)
	cs.IsSticky = b(cs.Mode&S_ISVTX != 0)
}

// RLimit is a (current, maximum) resource limit pair.
type RLimit struct {
	Current uint64
	Maximum uint64
}

// UnixTm mirrors struct tm from <time.h>.
type UnixTm struct {
	Sec   int32 // seconds (0-60)
	Min   int32 // minutes (0-59)
	Hour  int32 // hours (0-23)
	MDay  int32 // day of the month (1-31)
	Mon   int32 // month (0-11)
	Year  int32 // year - 1900
	WDay  int32 // day of the week (0-6, Sunday = 0), ignored by mktime
	YDay  int32 // day in the year (0-365), ignored by mktime
	IsDST int32
}

// UnixTmFromTime converts t, in its own location, to a struct tm.
func UnixTmFromTime(t time.Time) UnixTm {
	tm := UnixTm{
		Sec:  int32(t.Second()),
		Min:  int32(t.Minute()),
		Hour: int32(t.Hour()),
		MDay: int32(t.Day()),
		Mon:  int32(t.Month()) - 1,
		Year: int32(t.Year()) - 1900,
	}

	if t.IsDST() {
		tm.IsDST = 1
	}

	return tm
}

// Time converts tm back to a local time value.
func (tm *UnixTm) Time() time.Time {
	return time.Date(
		int(tm.Year)+1900,
		time.Month(tm.Mon+1),
		int(tm.MDay),
		int(tm.Hour),
		int(tm.Min),
		int(tm.Sec),
		0,
		time.Local,
	)
}

// Folder identifies a well-known folder of the Windows shell.
type Folder int

const (
	FolderDocuments Folder = iota
	FolderLocalAppData
	FolderProgramFiles
	FolderProgramFilesX86
	FolderSystem
	FolderSystemX86
)
