package core

const (
	OwnerRead    = 0o400
	OwnerWrite   = 0o200
	OwnerExecute = 0o100
	GroupRead    = 0o040
	GroupWrite   = 0o020
	GroupExecute = 0o010
	OtherRead    = 0o004
	OtherWrite   = 0o002
	OtherExecute = 0o001
)

var permBits = [9]struct {
	mask uint32
	char byte
}{
	{OwnerRead, 'r'},
	{OwnerWrite, 'w'},
	{OwnerExecute, 'x'},
	{GroupRead, 'r'},
	{GroupWrite, 'w'},
	{GroupExecute, 'x'},
	{OtherRead, 'r'},
	{OtherWrite, 'w'},
	{OtherExecute, 'x'},
}

var kindChars = map[ItemKind]byte{
	ItemDirectory:       'd',
	ItemFile:            '-',
	ItemSymbolicLink:    'l',
	ItemBlockDevice:     'b',
	ItemCharacterDevice: 'c',
	ItemNamedPipe:       'p',
	ItemSocket:          's',
}

// FormatPermissionString renders md the way ls -l prints the mode column,
// e.g. "drwxr-xr-x".
//
// The execute slots are overridden by the special bits: setuid and setgid
// always print 's', sticky prints 't' on directories. The upper-case
// forms are never produced.
func FormatPermissionString(md *FileMetadata) string {
	buf := make([]byte, 10)

	if c, ok := kindChars[md.Kind]; ok {
		buf[0] = c
	} else {
		buf[0] = '?'
	}

	for i, p := range permBits {
		var c byte

		switch {
		case p.mask == OwnerExecute && md.IsSetUID:
			c = 's'
		case p.mask == GroupExecute && md.IsSetGID:
			c = 's'
		case p.mask == OtherExecute && md.IsSticky && md.Kind == ItemDirectory:
			c = 't'
		case md.Mode&p.mask != 0:
			c = p.char
		default:
			c = '-'
		}

		buf[i+1] = c
	}

	return string(buf)
}

// PermissionString is a shorthand for FormatPermissionString.
func (md *FileMetadata) PermissionString() string {
	return FormatPermissionString(md)
}
