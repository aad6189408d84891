package file

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrBinaryFile   = errors.New("file is binary")
	ErrPathRequired = errors.New("path is required")
)

// -- Typed errors --

// StatError is returned when stat'ing a path fails.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}

func (e *StatError) Unwrap() error { return e.Cause }

func (e *StatError) IOError() bool { return true }

// ReadError is returned when reading file content fails.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error { return e.Cause }

func (e *ReadError) IOError() bool { return true }

// WriteError is returned when persisting file content fails.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }

func (e *WriteError) IOError() bool { return true }

// EnsureDirsError is returned when creating parent directories fails.
type EnsureDirsError struct {
	Path  string
	Cause error
}

func (e *EnsureDirsError) Error() string {
	return fmt.Sprintf("failed to create directories %s: %v", e.Path, e.Cause)
}

func (e *EnsureDirsError) Unwrap() error { return e.Cause }

func (e *EnsureDirsError) IOError() bool { return true }

// IsDirectoryError is returned when a file operation targets a directory.
type IsDirectoryError struct {
	Path string
}

func (e *IsDirectoryError) Error() string {
	return fmt.Sprintf("%s is a directory", e.Path)
}

func (e *IsDirectoryError) InvalidInput() bool { return true }

// TooLargeError is returned when a file exceeds files.max_file_size.
type TooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("%s is too large (size %d, limit %d)", e.Path, e.Size, e.Limit)
}

func (e *TooLargeError) InvalidInput() bool { return true }
