package core

import (
	"io/fs"

	"github.com/0xef53/go-osal/internal/native"
)

// IsHardLink reports whether the file at path has more than one hard link.
// info is the result of a previous lstat of path; nil means the path does
// not exist. Directories are never reported as hard links.
func (p *Platform) IsHardLink(path string, info fs.FileInfo) (bool, error) {
	if info == nil || info.IsDir() {
		return false, nil
	}

	n, err := p.bridge.LinkCount(path)
	if err != nil {
		return false, nativeCallFailed("link count", path, err)
	}

	return n > 1, nil
}

// GetLinkType returns LinkTypeSymbolic, LinkTypeHard or an empty string.
// A symbolic link is never reported as a hard link.
func (p *Platform) GetLinkType(path string, info fs.FileInfo) (string, error) {
	if info != nil && info.Mode()&fs.ModeSymlink != 0 {
		return LinkTypeSymbolic, nil
	}

	ok, err := p.IsHardLink(path, info)
	if err != nil {
		return "", err
	}

	if ok {
		return LinkTypeHard, nil
	}

	return "", nil
}

// LinkTarget returns the target of the symbolic link at path.
func (p *Platform) LinkTarget(path string) (string, error) {
	target, err := native.FollowSymLink(path)
	if err != nil {
		return "", nativeCallFailed("readlink", path, err)
	}

	return target, nil
}

func (p *Platform) CreateSymbolicLink(path, target string) error {
	if err := native.CreateSymLink(path, target); err != nil {
		return nativeCallFailed("symlink", path, err)
	}

	return nil
}

func (p *Platform) CreateHardLink(path, target string) error {
	if err := native.CreateHardLink(path, target); err != nil {
		return nativeCallFailed("link", path, err)
	}

	return nil
}

// IsSameFileSystemItem reports whether both paths name the same inode.
func (p *Platform) IsSameFileSystemItem(pathOne, pathTwo string) bool {
	return native.IsSameFileSystemItem(pathOne, pathTwo)
}

// InodeData returns the (device, inode) pair identifying path.
func (p *Platform) InodeData(path string) (uint64, uint64, error) {
	dev, ino, err := native.GetInodeData(path)
	if err != nil {
		return 0, 0, nativeCallFailed("stat", path, err)
	}

	return dev, ino, nil
}

func (p *Platform) IsExecutable(path string) bool {
	return native.IsExecutable(path)
}
