package pathkit

import (
	"errors"
	"fmt"
	"os"
)

// Common filesystem errors
var (
	ErrNotExist         = errors.New("file does not exist")
	ErrNotDir           = errors.New("not a directory")
	ErrIsDir            = errors.New("is a directory")
	ErrPermission       = errors.New("permission denied")
	ErrNotSupported     = errors.New("operation not supported")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that a file or directory
// does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsChecksumMismatch reports whether an error indicates that a verified
// copy found the destination content differing from the source
func IsChecksumMismatch(err error) bool {
	return errors.Is(err, ErrChecksumMismatch)
}

// osErr maps well-known os errors onto the package sentinels so callers
// can test with errors.Is without importing os
func osErr(err error) error {
	switch {
	case err == nil:
		return nil
	case os.IsNotExist(err):
		return ErrNotExist
	case os.IsPermission(err):
		return ErrPermission
	default:
		return err
	}
}
