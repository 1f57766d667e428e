package core

import (
	"errors"
	"fmt"
	"syscall"

	platerr "github.com/jmgilman/go/errors"
)

var (
	ErrUnsupported = platerr.New(platerr.CodeNotImplemented, "operation is not supported on this platform")
)

// NativeCallError carries the OS error code of a failed native call.
// The code is kept as returned by the OS.
type NativeCallError struct {
	Op    string
	Path  string
	Errno syscall.Errno
}

func (e *NativeCallError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Errno.Error())
	}

	return fmt.Sprintf("%s: %s", e.Op, e.Errno.Error())
}

func (e *NativeCallError) Unwrap() error {
	return e.Errno
}

// errorCategories maps OS error codes to error categories.
var errorCategories = map[syscall.Errno]platerr.ErrorCode{
	syscall.ENOENT:       platerr.CodeNotFound,
	syscall.ESRCH:        platerr.CodeNotFound,
	syscall.EACCES:       platerr.CodeForbidden,
	syscall.EPERM:        platerr.CodeForbidden,
	syscall.EROFS:        platerr.CodeForbidden,
	syscall.EEXIST:       platerr.CodeAlreadyExists,
	syscall.EINVAL:       platerr.CodeInvalidInput,
	syscall.ENOTDIR:      platerr.CodeInvalidInput,
	syscall.EISDIR:       platerr.CodeInvalidInput,
	syscall.ENAMETOOLONG: platerr.CodeInvalidInput,
	syscall.ELOOP:        platerr.CodeInvalidInput,
	syscall.EAGAIN:       platerr.CodeUnavailable,
	syscall.EBUSY:        platerr.CodeUnavailable,
	syscall.EINTR:        platerr.CodeUnavailable,
	syscall.ETIMEDOUT:    platerr.CodeTimeout,
	syscall.ENOSYS:       platerr.CodeNotImplemented,
	syscall.ENOTSUP:      platerr.CodeNotImplemented,
}

// ErrorCategory returns the error category of an OS error code.
func ErrorCategory(errno syscall.Errno) platerr.ErrorCode {
	if code, ok := errorCategories[errno]; ok {
		return code
	}

	return platerr.CodeExecutionFailed
}

// nativeCallFailed converts an error returned by the native bridge.
func nativeCallFailed(op, path string, err error) error {
	if errors.Is(err, errors.ErrUnsupported) {
		return unsupported(op)
	}

	var errno syscall.Errno

	if !errors.As(err, &errno) {
		return platerr.Wrapf(err, platerr.CodeExecutionFailed, "%s failed", op)
	}

	return platerr.Wrapf(&NativeCallError{Op: op, Path: path, Errno: errno}, ErrorCategory(errno), "%s failed", op)
}

func unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, ErrUnsupported)
}

func validationFailed(format string, args ...interface{}) error {
	return platerr.Newf(platerr.CodeInvalidInput, format, args...)
}

// IsNativeCallFailed reports whether err comes from a failed native call.
func IsNativeCallFailed(err error) bool {
	var e *NativeCallError

	return errors.As(err, &e)
}

// Errno extracts the OS error code from a native call failure.
func Errno(err error) (syscall.Errno, bool) {
	var e *NativeCallError

	if errors.As(err, &e) {
		return e.Errno, true
	}

	return 0, false
}

func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

func IsValidationFailed(err error) bool {
	return !IsNativeCallFailed(err) && platerr.GetCode(err) == platerr.CodeInvalidInput
}
