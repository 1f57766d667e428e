// Package facts answers cheap questions about the host platform.
// Expensive answers are computed once and cached for the life of the value.
package facts

import (
	"runtime"
	"strings"
	"sync"

	"github.com/0xef53/go-osal/internal/native"

	"github.com/digitalocean/go-smbios/smbios"
	log "github.com/sirupsen/logrus"
)

const (
	serverLevelsKey   = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Server\ServerLevels`
	currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`
)

type Facts struct {
	goos string

	nanoOnce sync.Once
	nano     bool

	iotOnce sync.Once
	iot     bool

	productOnce sync.Once
	product     string
}

func New() *Facts {
	return NewFor(runtime.GOOS)
}

// NewFor returns Facts answering for the given GOOS value instead of
// the running one. Registry and SMBIOS probes still go to the host.
func NewFor(goos string) *Facts {
	return &Facts{goos: goos}
}

func (f *Facts) IsLinux() bool {
	return f.goos == "linux"
}

func (f *Facts) IsMacOS() bool {
	return f.goos == "darwin"
}

func (f *Facts) IsWindows() bool {
	return f.goos == "windows"
}

// IsUnix reports whether the platform follows the POSIX/XDG conventions.
func (f *Facts) IsUnix() bool {
	return !f.IsWindows()
}

// IsNanoServer reports whether the host is a Windows Nano Server.
func (f *Facts) IsNanoServer() bool {
	if !f.IsWindows() {
		return false
	}

	f.nanoOnce.Do(func() {
		if v, ok := native.RegistryDWORD(serverLevelsKey, "NanoServer"); ok {
			f.nano = v == 1
		}
	})

	return f.nano
}

// IsIoT reports whether the host runs Windows IoT.
func (f *Facts) IsIoT() bool {
	if !f.IsWindows() {
		return false
	}

	f.iotOnce.Do(func() {
		if v, ok := native.RegistryString(currentVersionKey, "ProductName"); ok {
			f.iot = strings.EqualFold(v, "IoTUAP")
		}
	})

	return f.iot
}

func (f *Facts) IsWindowsDesktop() bool {
	return f.IsWindows() && !f.IsNanoServer() && !f.IsIoT()
}

// SystemProduct returns the product name from the SMBIOS System Information
// structure, or an empty string if the tables are not readable.
func (f *Facts) SystemProduct() string {
	f.productOnce.Do(func() {
		v, err := readSystemProduct()
		if err != nil {
			log.Debugf("Cannot read SMBIOS tables: %s", err)
			return
		}
		f.product = v
	})

	return f.product
}

func readSystemProduct() (string, error) {
	rc, _, err := smbios.Stream()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	ss, err := smbios.NewDecoder(rc).Decode()
	if err != nil {
		return "", err
	}

	return systemProduct(ss), nil
}

func systemProduct(ss []*smbios.Structure) string {
	for _, s := range ss {
		// Only look at System Information
		if s.Header.Type != 1 {
			continue
		}

		// Formatted[1] is the string index of the Product Name (offset 05h).
		// String indexes are 1-based, zero means "no string".
		if len(s.Formatted) < 2 {
			return ""
		}

		idx := int(s.Formatted[1])
		if idx == 0 || idx > len(s.Strings) {
			return ""
		}

		return strings.TrimSpace(s.Strings[idx-1])
	}

	return ""
}
