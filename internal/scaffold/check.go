package scaffold

import "errors"

// Status describes how much of a layout already exists under a base directory.
type Status struct {
	Present     []string
	Missing     []string
	Conflicting []string // blocked by a non-directory path component
}

// Complete reports whether every entry exists as a directory.
func (s *Status) Complete() bool {
	return len(s.Missing) == 0 && len(s.Conflicting) == 0
}

// Check inspects baseDir for every entry in paths without modifying
// anything. It fails only on entries that escape baseDir or on stat errors
// other than a missing path.
func Check(baseDir string, paths []string) (*Status, error) {
	status := &Status{}
	for _, rel := range paths {
		target, err := safeJoin(baseDir, rel)
		if err != nil {
			return nil, &FilesystemError{Op: "resolve", Path: rel, Err: err}
		}

		missing, err := missingComponents(baseDir, target)
		switch {
		case errors.Is(err, ErrNotDirectory):
			status.Conflicting = append(status.Conflicting, rel)
		case err != nil:
			return nil, &FilesystemError{Op: "stat", Path: rel, Err: err}
		case len(missing) > 0:
			status.Missing = append(status.Missing, rel)
		default:
			status.Present = append(status.Present, rel)
		}
	}
	return status, nil
}
