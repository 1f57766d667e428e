//go:build !linux && !darwin

package native

const Infinity = ^uint64(0)

func GetCommonStat(_ string, _ *CommonStat) error { return ErrUnsupported }

func GetCommonLStat(_ string, _ *CommonStat) error { return ErrUnsupported }

func GetInodeData(_ string) (uint64, uint64, error) { return 0, 0, ErrUnsupported }

func IsSameFileSystemItem(_, _ string) bool { return false }

func IsExecutable(_ string) bool { return false }

func FollowSymLink(_ string) (string, error) { return "", ErrUnsupported }

func CreateSymLink(_, _ string) error { return ErrUnsupported }

func CreateHardLink(_, _ string) error { return ErrUnsupported }

func SetDate(_ *UnixTm) error { return ErrUnsupported }

func GetRLimit(_ int, _ *RLimit) error { return ErrUnsupported }

func SetRLimit(_ int, _ *RLimit) error { return ErrUnsupported }

func Umask(_ int) (int, error) { return 0, ErrUnsupported }

func GetPPid(_ int) (int, error) { return -1, ErrUnsupported }

func GetUIDFromPid(_ int) (uint32, error) { return 0, ErrUnsupported }
