package scaffold

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDirectory means a path component exists but is not a directory.
	ErrNotDirectory = errors.New("path component exists and is not a directory")

	// ErrOutsideBase means an entry resolves outside the base directory.
	ErrOutsideBase = errors.New("path escapes the base directory")
)

// FilesystemError reports a failed directory operation for one layout entry.
type FilesystemError struct {
	Op   string // resolve, stat, mkdir or chmod
	Path string // the layout entry, relative to the base directory
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
