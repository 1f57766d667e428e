package core

import "github.com/0xef53/go-osal/internal/native"

// Resource is a kind of process resource limit.
type Resource int

const (
	CPUTime Resource = iota
	FileSize
	DataSegment
	StackSize
	CoreFileSize
	AddressSpace
	OpenFiles
	Processes
	LockedMemory
	ResidentSet

	// Linux only
	FileLocks
	PendingSignals
	MessageQueue
	NicePriority
	RealtimePriority
	RealtimeTimeout
)

var resourceNames = map[Resource]string{
	CPUTime:          "cpu",
	FileSize:         "fsize",
	DataSegment:      "data",
	StackSize:        "stack",
	CoreFileSize:     "core",
	AddressSpace:     "as",
	OpenFiles:        "nofile",
	Processes:        "nproc",
	LockedMemory:     "memlock",
	ResidentSet:      "rss",
	FileLocks:        "locks",
	PendingSignals:   "sigpending",
	MessageQueue:     "msgqueue",
	NicePriority:     "nice",
	RealtimePriority: "rtprio",
	RealtimeTimeout:  "rttime",
}

func (r Resource) String() string {
	if s, ok := resourceNames[r]; ok {
		return s
	}

	return "unknown"
}

// ParseResource returns the resource kind named s, e.g. "nofile".
func ParseResource(s string) (Resource, error) {
	for r, name := range resourceNames {
		if name == s {
			return r, nil
		}
	}

	return 0, validationFailed("unknown resource kind: %q", s)
}

// Unlimited is the value of a limit that is not enforced.
const Unlimited = native.Infinity

type ResourceLimitInfo struct {
	Resource Resource
	Current  uint64
	Maximum  uint64
}
