// Where: internal/domain/scaffold/errors.go
// What: Error taxonomy shared by directory selection and file generation.
// Why: Let the command layer report which step failed and why.
package scaffold

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection reports a directory index that is not a number or is out of range.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrEmptyInput reports a prompt answered with an empty or whitespace-only value.
	ErrEmptyInput = errors.New("empty input")
	// ErrFilesystem matches every *FilesystemError via errors.Is.
	ErrFilesystem = errors.New("filesystem error")
)

// FilesystemError describes a failed directory or file operation.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

// NewFilesystemError wraps err with the operation and path that produced it.
func NewFilesystemError(op, path string, err error) *FilesystemError {
	return &FilesystemError{Op: op, Path: path, Err: err}
}

func (e *FilesystemError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

func (e *FilesystemError) Is(target error) bool {
	return target == ErrFilesystem
}
