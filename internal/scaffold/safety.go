package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
)

// safeJoin joins rel onto base and verifies the result stays strictly
// inside base. rel may use forward slashes on any platform.
func safeJoin(base, rel string) (string, error) {
	if strings.TrimSpace(rel) == "" {
		return "", fmt.Errorf("%w: empty path", ErrOutsideBase)
	}
	if filepath.IsAbs(rel) || strings.HasPrefix(filepath.ToSlash(rel), "/") {
		return "", fmt.Errorf("%w: %q is absolute", ErrOutsideBase, rel)
	}

	cleanBase := filepath.Clean(base)
	target := filepath.Join(cleanBase, filepath.FromSlash(rel))

	r, err := filepath.Rel(cleanBase, target)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutsideBase, err)
	}
	r = filepath.ToSlash(r)
	if r == "." || r == ".." || strings.HasPrefix(r, "../") {
		return "", fmt.Errorf("%w: %q", ErrOutsideBase, rel)
	}
	return target, nil
}

// components returns the cumulative paths from base down to target, one per
// path segment, excluding base itself. target must come from safeJoin.
func components(base, target string) []string {
	r, _ := filepath.Rel(filepath.Clean(base), target)
	parts := strings.Split(r, string(filepath.Separator))
	out := make([]string, 0, len(parts))
	cur := filepath.Clean(base)
	for _, p := range parts {
		cur = filepath.Join(cur, p)
		out = append(out, cur)
	}
	return out
}
