package core

import (
	"os"
	"path/filepath"

	"github.com/0xef53/go-osal/internal/native"

	log "github.com/sirupsen/logrus"
)

var lookupEnv = os.LookupEnv

type DirectoryKind int

const (
	ConfigDirectory DirectoryKind = iota
	CacheDirectory
	DataDirectory
	UserModulesDirectory
	SharedModulesDirectory
	DefaultDirectory
)

func (k DirectoryKind) String() string {
	switch k {
	case ConfigDirectory:
		return "config"
	case CacheDirectory:
		return "cache"
	case DataDirectory:
		return "data"
	case UserModulesDirectory:
		return "user-modules"
	case SharedModulesDirectory:
		return "shared-modules"
	case DefaultDirectory:
		return "default"
	}

	return "unknown"
}

// DirectoryKinds lists every kind in declaration order.
var DirectoryKinds = []DirectoryKind{
	ConfigDirectory,
	CacheDirectory,
	DataDirectory,
	UserModulesDirectory,
	SharedModulesDirectory,
	DefaultDirectory,
}

// Outcome tells how a directory path was obtained.
type Outcome int

const (
	// The path was computed but nothing was checked or created
	AsIs Outcome = iota
	Existed
	Created
	FellBackToTemp
)

func (o Outcome) String() string {
	switch o {
	case AsIs:
		return "as-is"
	case Existed:
		return "existed"
	case Created:
		return "created"
	case FellBackToTemp:
		return "fell-back-to-temp"
	}

	return "unknown"
}

type DirectoryResult struct {
	Path    string
	Outcome Outcome
}

const (
	modulesSubdir    = "Modules"
	sharedModulesDir = "/usr/local/share"
)

// Directory is ResolveDirectory without the outcome.
func (p *Platform) Directory(kind DirectoryKind) string {
	return p.ResolveDirectory(kind).Path
}

// ResolveDirectory returns the location of the given directory kind.
// It never fails: when a directory that must exist cannot be created,
// the process temporary directory is returned instead.
func (p *Platform) ResolveDirectory(kind DirectoryKind) *DirectoryResult {
	if p.facts.IsWindows() {
		return p.resolveWindowsDirectory(kind)
	}

	return p.resolveXDGDirectory(kind)
}

func (p *Platform) env(name string) string {
	if v, ok := p.getenv(name); ok {
		return v
	}

	return ""
}

// home returns the home directory of the current user,
// or the temporary directory if it is not known.
func (p *Platform) home() string {
	name := "HOME"

	if p.facts.IsWindows() {
		name = "USERPROFILE"
	}

	if v := p.env(name); v != "" {
		return v
	}

	log.Debugf("%s is not set, using temporary directory as home", name)

	return p.temp.Path()
}

func (p *Platform) resolveXDGDirectory(kind DirectoryKind) *DirectoryResult {
	product := p.cfg.ProductName

	switch kind {
	case ConfigDirectory:
		if v := p.env("XDG_CONFIG_HOME"); v != "" {
			return &DirectoryResult{Path: filepath.Join(v, product)}
		}

		return &DirectoryResult{Path: filepath.Join(p.home(), ".config", product)}
	case DataDirectory:
		if v := p.env("XDG_DATA_HOME"); v != "" {
			return &DirectoryResult{Path: filepath.Join(v, product)}
		}

		return p.ensure(filepath.Join(p.home(), ".local", "share", product))
	case UserModulesDirectory:
		if v := p.env("XDG_DATA_HOME"); v != "" {
			return &DirectoryResult{Path: filepath.Join(v, product, modulesSubdir)}
		}

		return p.ensure(filepath.Join(p.home(), ".local", "share", product, modulesSubdir))
	case CacheDirectory:
		if v := p.env("XDG_CACHE_HOME"); v != "" {
			return &DirectoryResult{Path: filepath.Join(v, product)}
		}

		return p.ensure(filepath.Join(p.home(), ".cache", product))
	case SharedModulesDirectory:
		return &DirectoryResult{Path: filepath.Join(sharedModulesDir, product, modulesSubdir)}
	}

	return p.ensure(filepath.Join(p.home(), ".config", product))
}

func (p *Platform) resolveWindowsDirectory(kind DirectoryKind) *DirectoryResult {
	product := p.cfg.ProductName

	switch kind {
	case ConfigDirectory:
		return &DirectoryResult{Path: filepath.Join(p.knownFolder(native.FolderDocuments), product)}
	case DataDirectory, CacheDirectory:
		return p.ensure(filepath.Join(p.knownFolder(native.FolderLocalAppData), "Microsoft", product))
	case UserModulesDirectory:
		return p.ensure(filepath.Join(p.knownFolder(native.FolderDocuments), product, modulesSubdir))
	case SharedModulesDirectory:
		return &DirectoryResult{Path: filepath.Join(p.knownFolder(native.FolderProgramFiles), product, modulesSubdir)}
	}

	return p.ensure(filepath.Join(p.knownFolder(native.FolderDocuments), product))
}

// Relative locations of known folders under the user profile,
// used when the shell cannot be asked.
var knownFolderFallbacks = map[native.Folder]string{
	native.FolderDocuments:    "Documents",
	native.FolderLocalAppData: filepath.Join("AppData", "Local"),
}

func (p *Platform) knownFolder(f native.Folder) string {
	path, err := native.KnownFolderPath(f)
	if err == nil && path != "" {
		return path
	}

	if rel, ok := knownFolderFallbacks[f]; ok {
		return filepath.Join(p.home(), rel)
	}

	if f == native.FolderProgramFiles {
		if v := p.env("ProgramFiles"); v != "" {
			return v
		}
	}

	return p.temp.Path()
}

// ensure creates path if it does not exist yet.
func (p *Platform) ensure(path string) *DirectoryResult {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return &DirectoryResult{Path: path, Outcome: Existed}
	}

	if err := mkdirAll(path, 0o777); err != nil {
		log.WithField("path", path).Warnf("Cannot create directory, using temporary directory instead: %s", err)

		return &DirectoryResult{Path: p.temp.Path(), Outcome: FellBackToTemp}
	}

	log.WithField("path", path).Debug("Directory created")

	return &DirectoryResult{Path: path, Outcome: Created}
}
