package core

import (
	"os"
	"path/filepath"

	"github.com/0xef53/go-osal/internal/native"

	log "github.com/sirupsen/logrus"
)

// SpecialFolder names a system folder with a well-known purpose.
type SpecialFolder int

const (
	ProgramFilesFolder SpecialFolder = iota
	ProgramFilesX86Folder
	SystemFolder
	SystemX86Folder
	PersonalFolder
	LocalApplicationDataFolder
	DesktopFolder
	StartupFolder
)

func (f SpecialFolder) String() string {
	switch f {
	case ProgramFilesFolder:
		return "ProgramFiles"
	case ProgramFilesX86Folder:
		return "ProgramFilesX86"
	case SystemFolder:
		return "System"
	case SystemX86Folder:
		return "SystemX86"
	case PersonalFolder:
		return "Personal"
	case LocalApplicationDataFolder:
		return "LocalApplicationData"
	case DesktopFolder:
		return "Desktop"
	case StartupFolder:
		return "Startup"
	}

	return "Unknown"
}

var windowsFolders = map[SpecialFolder]native.Folder{
	ProgramFilesFolder:         native.FolderProgramFiles,
	ProgramFilesX86Folder:      native.FolderProgramFilesX86,
	SystemFolder:               native.FolderSystem,
	SystemX86Folder:            native.FolderSystemX86,
	PersonalFolder:             native.FolderDocuments,
	LocalApplicationDataFolder: native.FolderLocalAppData,
}

var unixFolders = map[SpecialFolder]string{
	ProgramFilesFolder:    "/bin",
	ProgramFilesX86Folder: "/usr/bin",
	SystemFolder:          "/sbin",
	SystemX86Folder:       "/sbin",
}

// GetFolderPath returns the location of a special folder. System folders
// that do not exist on this host yield an empty path.
func (p *Platform) GetFolderPath(f SpecialFolder) (string, error) {
	if p.facts.IsWindows() {
		id, ok := windowsFolders[f]
		if !ok {
			return "", unsupported("folder " + f.String())
		}

		path, err := native.KnownFolderPath(id)
		if err != nil {
			return "", nativeCallFailed("known folder", f.String(), err)
		}

		return path, nil
	}

	switch f {
	case PersonalFolder:
		return p.home(), nil
	case LocalApplicationDataFolder:
		path := filepath.Join(p.home(), ".config")

		if err := mkdirAll(path, 0o777); err != nil {
			log.WithField("path", path).Warnf("Cannot create local application data folder: %s", err)
			return "", nil
		}

		return path, nil
	}

	path, ok := unixFolders[f]
	if !ok {
		return "", unsupported("folder " + f.String())
	}

	if _, err := os.Stat(path); err != nil {
		return "", nil
	}

	return path, nil
}
