package scaffold

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scaffoldr/scaffoldr/internal/platform"
)

// DefaultDirPerm is applied to directories the scaffolder creates.
const DefaultDirPerm os.FileMode = 0755

// Options tune EnsureStructure.
type Options struct {
	// DirPerm is applied to newly created directories. Zero means DefaultDirPerm.
	DirPerm os.FileMode
	// DryRun reports what would be created without touching the filesystem.
	DryRun bool
}

// Result holds the outcome of EnsureStructure. Entries are the relative
// paths as given, in input order.
type Result struct {
	Created  []string
	Existing []string
	Planned  []string // dry-run only
}

// EnsureStructure creates every path in paths, plus missing ancestors, under
// baseDir. It writes one progress line per entry to w and stops at the first
// failure, returning a *FilesystemError. Directories created before the
// failure are kept.
func EnsureStructure(w io.Writer, baseDir string, paths []string, opts Options) (*Result, error) {
	if w == nil {
		w = io.Discard
	}
	perm := opts.DirPerm
	if perm == 0 {
		perm = DefaultDirPerm
	}

	result := &Result{}

	for _, rel := range paths {
		target, err := safeJoin(baseDir, rel)
		if err != nil {
			return result, &FilesystemError{Op: "resolve", Path: rel, Err: err}
		}

		missing, err := missingComponents(baseDir, target)
		if err != nil {
			return result, &FilesystemError{Op: "stat", Path: rel, Err: err}
		}

		if len(missing) == 0 {
			result.Existing = append(result.Existing, rel)
			fmt.Fprintf(w, "  Exists:  %s\n", rel)
			continue
		}

		if opts.DryRun {
			result.Planned = append(result.Planned, rel)
			fmt.Fprintf(w, "  Would create: %s\n", rel)
			continue
		}

		if err := os.MkdirAll(target, perm); err != nil {
			return result, &FilesystemError{Op: "mkdir", Path: rel, Err: err}
		}
		// MkdirAll is subject to umask; set the exact mode on what we made.
		for _, dir := range missing {
			if err := platform.Chmod(dir, perm); err != nil {
				return result, &FilesystemError{Op: "chmod", Path: rel, Err: err}
			}
		}

		result.Created = append(result.Created, rel)
		fmt.Fprintf(w, "  Created: %s\n", rel)
	}

	return result, nil
}

// missingComponents walks from baseDir down to target and returns the
// directories that do not exist yet, shallowest first. A component that
// exists as anything other than a directory yields ErrNotDirectory.
func missingComponents(baseDir, target string) ([]string, error) {
	comps := components(baseDir, target)
	for i, dir := range comps {
		info, err := os.Stat(dir)
		switch {
		case err == nil && info.IsDir():
			continue
		case err == nil:
			rel, _ := filepath.Rel(filepath.Clean(baseDir), dir)
			return nil, fmt.Errorf("%w: %s", ErrNotDirectory, filepath.ToSlash(rel))
		case errors.Is(err, os.ErrNotExist):
			return comps[i:], nil
		default:
			return nil, err
		}
	}
	return nil, nil
}
