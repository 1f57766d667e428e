package native

import (
	"golang.org/x/sys/unix"
)

// Infinity is the value the kernel reports for an unlimited resource.
const Infinity = uint64(unix.RLIM_INFINITY)

// GetPPid returns the parent pid of pid using the kern.proc.pid sysctl.
func GetPPid(pid int) (int, error) {
	kp, err := unix.SysctlKinfoProc("kern.proc.pid", pid)
	if err != nil {
		return -1, err
	}

	return int(kp.Eproc.Ppid), nil
}

// GetUIDFromPid returns the effective uid owning the process.
func GetUIDFromPid(pid int) (uint32, error) {
	kp, err := unix.SysctlKinfoProc("kern.proc.pid", pid)
	if err != nil {
		return 0, err
	}

	return kp.Eproc.Ucred.Uid, nil
}

// GetThreadID returns the system-wide id of the calling thread,
// the value pthread_threadid_np reports.
func GetThreadID() (int, error) {
	id, _, errno := unix.Syscall(unix.SYS_THREAD_SELFID, 0, 0, 0)
	if errno != 0 {
		return -1, errno
	}

	return int(id), nil
}
