package facts

import (
	"runtime"
	"testing"

	"github.com/digitalocean/go-smbios/smbios"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilies(t *testing.T) {
	f := New()

	assert.Equal(t, runtime.GOOS == "linux", f.IsLinux())
	assert.Equal(t, runtime.GOOS == "darwin", f.IsMacOS())
	assert.Equal(t, runtime.GOOS == "windows", f.IsWindows())
	assert.Equal(t, !f.IsWindows(), f.IsUnix())
}

func TestWindowsVariantsOnUnix(t *testing.T) {
	f := &Facts{goos: "linux"}

	require.False(t, f.IsNanoServer())
	require.False(t, f.IsIoT())
	require.False(t, f.IsWindowsDesktop())
}

func TestSystemProduct(t *testing.T) {
	ss := []*smbios.Structure{
		{
			Header:    smbios.Header{Type: 0},
			Formatted: []byte{1, 2},
			Strings:   []string{"BIOS vendor", "1.0"},
		},
		{
			Header:    smbios.Header{Type: 1},
			Formatted: []byte{1, 2, 3, 0},
			Strings:   []string{"QEMU", " Standard PC (Q35 + ICH9, 2009) ", "pc-q35-8.2"},
		},
	}

	require.Equal(t, "Standard PC (Q35 + ICH9, 2009)", systemProduct(ss))
}

func TestSystemProductMissing(t *testing.T) {
	ss := []*smbios.Structure{
		{
			Header:    smbios.Header{Type: 1},
			Formatted: []byte{1, 0},
			Strings:   []string{"QEMU"},
		},
	}

	require.Empty(t, systemProduct(ss))
	require.Empty(t, systemProduct(nil))
}

func TestNewForFamily(t *testing.T) {
	tests := []struct {
		goos                     string
		linux, macos, win, unixy bool
	}{
		{"linux", true, false, false, true},
		{"darwin", false, true, false, true},
		{"windows", false, false, true, false},
		{"freebsd", false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			f := NewFor(tt.goos)

			require.Equal(t, tt.linux, f.IsLinux())
			require.Equal(t, tt.macos, f.IsMacOS())
			require.Equal(t, tt.win, f.IsWindows())
			require.Equal(t, tt.unixy, f.IsUnix())
		})
	}
}
