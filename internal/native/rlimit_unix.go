//go:build linux || darwin

package native

import (
	"golang.org/x/sys/unix"
)

// GetRLimit reads the limits of the given native resource id.
func GetRLimit(resource int, rl *RLimit) error {
	var r unix.Rlimit

	if err := unix.Getrlimit(resource, &r); err != nil {
		return err
	}

	rl.Current = uint64(r.Cur)
	rl.Maximum = uint64(r.Max)

	return nil
}

// SetRLimit applies rl to the given native resource id.
func SetRLimit(resource int, rl *RLimit) error {
	r := unix.Rlimit{
		Cur: rl.Current,
		Max: rl.Maximum,
	}

	return unix.Setrlimit(resource, &r)
}

// Umask sets the file mode creation mask and returns the previous one.
func Umask(mask int) (int, error) {
	return unix.Umask(mask), nil
}
