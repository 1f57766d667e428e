//go:build !linux && !darwin && !windows

package native

func GetThreadID() (int, error) { return -1, ErrUnsupported }
