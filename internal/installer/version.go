package installer

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionOutput runs `bin --version`. Replaced in tests.
var versionOutput = func(ctx context.Context, bin string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", bin, err)
	}
	return string(out), nil
}

// ParseVersion extracts a semantic version from `--version` output. It looks
// at the first line and accepts the first whitespace-separated field that
// parses, tolerating a leading "v".
func ParseVersion(output string) (*semver.Version, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	for _, field := range strings.Fields(line) {
		v, err := semver.NewVersion(strings.TrimPrefix(field, "v"))
		if err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no version found in %q", line)
}

// DetectVersion runs `bin --version` and parses the result.
func DetectVersion(ctx context.Context, bin string) (*semver.Version, error) {
	out, err := versionOutput(ctx, bin)
	if err != nil {
		return nil, err
	}
	v, err := ParseVersion(out)
	if err != nil {
		return nil, fmt.Errorf("detecting %s version: %w", bin, err)
	}
	return v, nil
}

// CheckVersion detects the version of bin and reports whether it satisfies
// constraint (for example ">=7.0.0").
func CheckVersion(ctx context.Context, bin, constraint string) (*semver.Version, bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, false, fmt.Errorf("parsing version constraint %q: %w", constraint, err)
	}
	v, err := DetectVersion(ctx, bin)
	if err != nil {
		return nil, false, err
	}
	return v, c.Check(v), nil
}
