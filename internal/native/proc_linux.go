package native

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// Infinity is the value the kernel reports for an unlimited resource.
const Infinity = ^uint64(0)

// GetPPid returns the parent pid of pid as recorded in procfs.
func GetPPid(pid int) (int, error) {
	b, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return -1, err
	}

	// 93 (bash) S 92 93 2 4294967295 ...
	// The command name may contain spaces, so split after the closing paren.
	s := string(b)

	idx := strings.LastIndexByte(s, ')')
	if idx < 0 {
		return -1, fmt.Errorf("malformed stat record for pid %d", pid)
	}

	parts := strings.Fields(s[idx+1:])
	if len(parts) < 2 {
		return -1, fmt.Errorf("malformed stat record for pid %d", pid)
	}

	return strconv.Atoi(parts[1])
}

// GetUIDFromPid returns the real uid owning the process.
func GetUIDFromPid(pid int) (uint32, error) {
	var st unix.Stat_t

	if err := unix.Stat(fmt.Sprintf("/proc/%d", pid), &st); err != nil {
		return 0, err
	}

	return st.Uid, nil
}

// GetThreadID returns the kernel id of the calling thread.
func GetThreadID() (int, error) {
	return unix.Gettid(), nil
}
