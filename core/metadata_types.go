package core

import "time"

type ItemKind int

const (
	ItemUnknown ItemKind = iota
	ItemDirectory
	ItemFile
	ItemSymbolicLink
	ItemBlockDevice
	ItemCharacterDevice
	ItemNamedPipe
	ItemSocket
)

func (k ItemKind) String() string {
	switch k {
	case ItemDirectory:
		return "Directory"
	case ItemFile:
		return "File"
	case ItemSymbolicLink:
		return "SymbolicLink"
	case ItemBlockDevice:
		return "BlockDevice"
	case ItemCharacterDevice:
		return "CharacterDevice"
	case ItemNamedPipe:
		return "NamedPipe"
	case ItemSocket:
		return "Socket"
	}

	return "Unknown"
}

// FileMetadata is a snapshot of one stat call.
type FileMetadata struct {
	Inode            uint64
	Mode             uint32
	UserID           uint32
	GroupID          uint32
	HardlinkCount    uint32
	Size             int64
	AccessTime       time.Time
	ModifiedTime     time.Time
	StatusChangeTime time.Time
	BlockSize        int64
	DeviceID         uint64
	NumberOfBlocks   int64
	Kind             ItemKind
	IsSetUID         bool
	IsSetGID         bool
	IsSticky         bool
}

// Link types reported by GetLinkType.
const (
	LinkTypeSymbolic = "SymbolicLink"
	LinkTypeHard     = "HardLink"
)
