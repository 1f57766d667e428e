package core

import "golang.org/x/sys/unix"

var nativeResources = map[Resource]int{
	CPUTime:          unix.RLIMIT_CPU,
	FileSize:         unix.RLIMIT_FSIZE,
	DataSegment:      unix.RLIMIT_DATA,
	StackSize:        unix.RLIMIT_STACK,
	CoreFileSize:     unix.RLIMIT_CORE,
	AddressSpace:     unix.RLIMIT_AS,
	OpenFiles:        unix.RLIMIT_NOFILE,
	Processes:        unix.RLIMIT_NPROC,
	LockedMemory:     unix.RLIMIT_MEMLOCK,
	ResidentSet:      unix.RLIMIT_RSS,
	FileLocks:        unix.RLIMIT_LOCKS,
	PendingSignals:   unix.RLIMIT_SIGPENDING,
	MessageQueue:     unix.RLIMIT_MSGQUEUE,
	NicePriority:     unix.RLIMIT_NICE,
	RealtimePriority: unix.RLIMIT_RTPRIO,
	RealtimeTimeout:  unix.RLIMIT_RTTIME,
}
