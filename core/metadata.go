package core

import (
	"time"

	"github.com/0xef53/go-osal/internal/native"
)

// GetMetadata returns the metadata of path. With followSymlinks
// a terminal symbolic link is resolved (stat), otherwise the link
// itself is described (lstat).
func (p *Platform) GetMetadata(path string, followSymlinks bool) (*FileMetadata, error) {
	var cs native.CommonStat

	if followSymlinks {
		if err := p.bridge.Stat(path, &cs); err != nil {
			return nil, nativeCallFailed("stat", path, err)
		}
	} else {
		if err := p.bridge.LStat(path, &cs); err != nil {
			return nil, nativeCallFailed("lstat", path, err)
		}
	}

	return newFileMetadata(&cs), nil
}

func newFileMetadata(cs *native.CommonStat) *FileMetadata {
	return &FileMetadata{
		Inode:            cs.Inode,
		Mode:             cs.Mode,
		UserID:           cs.UserID,
		GroupID:          cs.GroupID,
		HardlinkCount:    cs.HardlinkCount,
		Size:             cs.Size,
		AccessTime:       time.Unix(cs.AccessTime, 0).Local(),
		ModifiedTime:     time.Unix(cs.ModifiedTime, 0).Local(),
		StatusChangeTime: time.Unix(cs.StatusChangeTime, 0).Local(),
		BlockSize:        cs.BlockSize,
		DeviceID:         cs.DeviceID,
		NumberOfBlocks:   cs.NumberOfBlocks,
		Kind:             itemKind(cs),
		IsSetUID:         cs.IsSetUID == 1,
		IsSetGID:         cs.IsSetGID == 1,
		IsSticky:         cs.IsSticky == 1,
	}
}

// itemKind classifies the record. The order of the checks is significant.
func itemKind(cs *native.CommonStat) ItemKind {
	switch {
	case cs.IsDirectory == 1:
		return ItemDirectory
	case cs.IsFile == 1:
		return ItemFile
	case cs.IsSymbolicLink == 1:
		return ItemSymbolicLink
	case cs.IsBlockDevice == 1:
		return ItemBlockDevice
	case cs.IsCharacterDevice == 1:
		return ItemCharacterDevice
	case cs.IsNamedPipe == 1:
		return ItemNamedPipe
	case cs.IsSocket == 1:
		return ItemSocket
	}

	return ItemUnknown
}

// OwnerName returns the login name of the owner of md.
func (p *Platform) OwnerName(md *FileMetadata) string {
	return p.ResolveUserName(md.UserID)
}

// GroupName returns the name of the group owning md.
func (p *Platform) GroupName(md *FileMetadata) string {
	return p.ResolveGroupName(md.GroupID)
}
