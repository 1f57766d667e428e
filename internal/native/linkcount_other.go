//go:build !linux && !darwin && !windows

package native

func GetLinkCount(_ string) (int, error) { return 0, ErrUnsupported }
