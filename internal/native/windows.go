//go:build windows

package native

import (
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var knownFolders = map[Folder]*windows.KNOWNFOLDERID{
	FolderDocuments:       windows.FOLDERID_Documents,
	FolderLocalAppData:    windows.FOLDERID_LocalAppData,
	FolderProgramFiles:    windows.FOLDERID_ProgramFiles,
	FolderProgramFilesX86: windows.FOLDERID_ProgramFilesX86,
	FolderSystem:          windows.FOLDERID_System,
	FolderSystemX86:       windows.FOLDERID_SystemX86,
}

// KnownFolderPath resolves a shell known folder for the current user.
func KnownFolderPath(f Folder) (string, error) {
	id, ok := knownFolders[f]
	if !ok {
		return "", ErrUnsupported
	}

	return windows.KnownFolderPath(id, windows.KF_FLAG_DEFAULT)
}

// GetLinkCount returns the number of hard links to path.
func GetLinkCount(path string) (int, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}

	h, err := windows.CreateFile(
		p,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS|windows.FILE_FLAG_OPEN_REPARSE_POINT,
		0,
	)
	if err != nil {
		return 0, err
	}
	defer windows.CloseHandle(h)

	var d windows.ByHandleFileInformation

	if err := windows.GetFileInformationByHandle(h, &d); err != nil {
		return 0, err
	}

	return int(d.NumberOfLinks), nil
}

// RegistryString reads a REG_SZ value below HKEY_LOCAL_MACHINE.
func RegistryString(path, name string) (string, bool) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	v, vtype, err := k.GetStringValue(name)
	if err != nil || vtype != registry.SZ {
		return "", false
	}

	return v, true
}

// RegistryDWORD reads a REG_DWORD value below HKEY_LOCAL_MACHINE.
func RegistryDWORD(path, name string) (uint32, bool) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return 0, false
	}
	defer k.Close()

	v, vtype, err := k.GetIntegerValue(name)
	if err != nil || vtype != registry.DWORD {
		return 0, false
	}

	return uint32(v), true
}

func GetThreadID() (int, error) {
	return int(windows.GetCurrentThreadId()), nil
}
