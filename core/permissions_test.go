package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPermissionString(t *testing.T) {
	tests := []struct {
		name string
		md   FileMetadata
		want string
	}{
		{"regular file", FileMetadata{Kind: ItemFile, Mode: 0o644}, "-rw-r--r--"},
		{"directory", FileMetadata{Kind: ItemDirectory, Mode: 0o755}, "drwxr-xr-x"},
		{"symlink", FileMetadata{Kind: ItemSymbolicLink, Mode: 0o777}, "lrwxrwxrwx"},
		{"block device", FileMetadata{Kind: ItemBlockDevice, Mode: 0o660}, "brw-rw----"},
		{"char device", FileMetadata{Kind: ItemCharacterDevice, Mode: 0o666}, "crw-rw-rw-"},
		{"named pipe", FileMetadata{Kind: ItemNamedPipe, Mode: 0o600}, "prw-------"},
		{"socket", FileMetadata{Kind: ItemSocket, Mode: 0o755}, "srwxr-xr-x"},
		{"unknown", FileMetadata{Kind: ItemUnknown, Mode: 0o644}, "?rw-r--r--"},
		{"no permissions", FileMetadata{Kind: ItemFile}, "----------"},
		{"setuid executable", FileMetadata{Kind: ItemFile, Mode: 0o4755, IsSetUID: true}, "-rwsr-xr-x"},
		{"setuid without execute", FileMetadata{Kind: ItemFile, Mode: 0o4644, IsSetUID: true}, "-rwsr--r--"},
		{"setgid", FileMetadata{Kind: ItemFile, Mode: 0o2750, IsSetGID: true}, "-rwxr-s---"},
		{"sticky directory", FileMetadata{Kind: ItemDirectory, Mode: 0o1777, IsSticky: true}, "drwxrwxrwt"},
		{"sticky file", FileMetadata{Kind: ItemFile, Mode: 0o1644, IsSticky: true}, "-rw-r--r--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPermissionString(&tt.md)

			assert.Len(t, got, 10)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, tt.md.PermissionString())
		})
	}
}
