package core

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// The umask is a process attribute and can only be read by replacing it.
// umaskMu also guards every directory this package creates, so that
// creation never runs under the probe value.
var umaskMu sync.Mutex

// umaskProbe is installed for the duration of a read.
const umaskProbe = 0o077

// mkdirAll is os.MkdirAll serialized with umask reads.
func mkdirAll(path string, perm os.FileMode) error {
	umaskMu.Lock()
	defer umaskMu.Unlock()

	return os.MkdirAll(path, perm)
}

type UmaskInfo struct {
	Value    uint32
	Octal    string
	Symbolic string
}

func NewUmaskInfo(v uint32) *UmaskInfo {
	return &UmaskInfo{
		Value:    v,
		Octal:    fmt.Sprintf("%04o", v),
		Symbolic: FormatSymbolicUmask(v),
	}
}

// GetUmask returns the umask of the current process.
func (p *Platform) GetUmask() (*UmaskInfo, error) {
	umaskMu.Lock()
	defer umaskMu.Unlock()

	return p.getUmask()
}

func (p *Platform) getUmask() (*UmaskInfo, error) {
	old, err := p.bridge.Umask(umaskProbe)
	if err != nil {
		return nil, nativeCallFailed("umask", "", err)
	}

	if _, err := p.bridge.Umask(old); err != nil {
		return nil, nativeCallFailed("umask", "", err)
	}

	return NewUmaskInfo(uint32(old)), nil
}

// SetUmask replaces the umask of the current process.
func (p *Platform) SetUmask(v uint32) error {
	if v > 0o777 {
		return validationFailed("umask value out of range: %#o", v)
	}

	umaskMu.Lock()
	defer umaskMu.Unlock()

	if _, err := p.bridge.Umask(int(v)); err != nil {
		return nativeCallFailed("umask", "", err)
	}

	return nil
}

// SetSymbolicUmask applies a symbolic mode like "u=rwx,g=rx,o=" to
// the current umask.
func (p *Platform) SetSymbolicUmask(s string) error {
	if _, err := ParseSymbolicUmask(s, 0); err != nil {
		return err
	}

	umaskMu.Lock()
	defer umaskMu.Unlock()

	cur, err := p.getUmask()
	if err != nil {
		return err
	}

	v, err := ParseSymbolicUmask(s, cur.Value)
	if err != nil {
		return err
	}

	if _, err := p.bridge.Umask(int(v)); err != nil {
		return nativeCallFailed("umask", "", err)
	}

	return nil
}

var umaskClasses = map[byte]uint{
	'u': 6,
	'g': 3,
	'o': 0,
}

// ParseSymbolicUmask converts clauses of the form <classes>=<perms>
// into a umask value. The permissions listed are the ones allowed,
// so each digit is the complement of the listed bits.
// Classes not mentioned keep their digit from current.
func ParseSymbolicUmask(s string, current uint32) (uint32, error) {
	if strings.TrimSpace(s) == "" {
		return 0, validationFailed("empty symbolic umask")
	}

	mask := current & 0o777

	for _, clause := range strings.Split(s, ",") {
		classes, perms, ok := strings.Cut(clause, "=")
		if !ok {
			return 0, validationFailed("invalid umask clause %q: missing '='", clause)
		}

		if classes == "" {
			return 0, validationFailed("invalid umask clause %q: no class given", clause)
		}

		var bits uint32

		for i := 0; i < len(perms); i++ {
			switch perms[i] {
			case 'r':
				bits |= 4
			case 'w':
				bits |= 2
			case 'x':
				bits |= 1
			default:
				return 0, validationFailed("invalid umask permission %q in %q", perms[i], clause)
			}
		}

		for i := 0; i < len(classes); i++ {
			shift, ok := umaskClasses[classes[i]]
			if !ok {
				return 0, validationFailed("invalid umask class %q in %q", classes[i], clause)
			}

			mask = mask&^(0o7<<shift) | (0o7&^bits)<<shift
		}
	}

	return mask, nil
}

// FormatSymbolicUmask renders v the way "umask -S" does.
func FormatSymbolicUmask(v uint32) string {
	parts := make([]string, 0, 3)

	for _, c := range []byte{'u', 'g', 'o'} {
		allowed := ^(v >> umaskClasses[c]) & 0o7

		var b strings.Builder

		b.WriteByte(c)
		b.WriteByte('=')

		if allowed&4 != 0 {
			b.WriteByte('r')
		}
		if allowed&2 != 0 {
			b.WriteByte('w')
		}
		if allowed&1 != 0 {
			b.WriteByte('x')
		}

		parts = append(parts, b.String())
	}

	return strings.Join(parts, ",")
}
