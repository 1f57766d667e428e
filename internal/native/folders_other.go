//go:build !windows

package native

func KnownFolderPath(_ Folder) (string, error) { return "", ErrUnsupported }

func RegistryString(_, _ string) (string, bool) { return "", false }

func RegistryDWORD(_, _ string) (uint32, bool) { return 0, false }
