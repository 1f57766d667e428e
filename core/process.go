package core

import (
	"time"

	"github.com/0xef53/go-osal/internal/identity"
	"github.com/0xef53/go-osal/internal/native"

	log "github.com/sirupsen/logrus"
)

// ParentPid returns the parent of pid, or -1 if it cannot be determined.
func (p *Platform) ParentPid(pid int) int {
	ppid, err := native.GetPPid(pid)
	if err != nil {
		log.WithField("pid", pid).Debugf("Cannot determine parent pid: %s", err)
		return -1
	}

	return ppid
}

// UserFromPid returns the name of the user owning the process,
// or identity.Unknown.
func (p *Platform) UserFromPid(pid int) string {
	uid, err := native.GetUIDFromPid(pid)
	if err != nil {
		log.WithField("pid", pid).Debugf("Cannot determine process owner: %s", err)
		return identity.Unknown
	}

	return p.ResolveUserName(uid)
}

// CurrentThreadID returns the OS id of the calling thread, or -1.
// The result is only meaningful while the goroutine is locked to its
// thread with runtime.LockOSThread.
func (p *Platform) CurrentThreadID() int {
	tid, err := native.GetThreadID()
	if err != nil {
		log.Debugf("Cannot determine thread id: %s", err)
		return -1
	}

	return tid
}

// SetDate sets the system clock to t. Requires privileges.
func (p *Platform) SetDate(t time.Time) error {
	tm := native.UnixTmFromTime(t.Local())

	if err := native.SetDate(&tm); err != nil {
		return nativeCallFailed("settimeofday", "", err)
	}

	return nil
}
