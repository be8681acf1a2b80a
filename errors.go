package mimekit

import (
	"errors"
	"fmt"
)

// Common classification errors
var (
	ErrNotRegular      = errors.New("not a regular file")
	ErrTooLarge        = errors.New("content exceeds max file size")
	ErrDuplicateType   = errors.New("duplicate content type")
	ErrInvalidType     = errors.New("invalid content type")
	ErrMissingFallback = errors.New("catalog is missing a fallback type")
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

// IsTooLarge reports whether an error indicates that content was over
// the configured size limit
func IsTooLarge(err error) bool {
	return errors.Is(err, ErrTooLarge)
}

// IsNotRegular reports whether an error indicates that a path did not
// reference a regular file
func IsNotRegular(err error) bool {
	return errors.Is(err, ErrNotRegular)
}
