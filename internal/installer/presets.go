package installer

import (
	"fmt"
	"sort"
	"strings"
)

// Supported package manager identifiers.
const (
	ManagerNPM  = "npm"
	ManagerPNPM = "pnpm"
	ManagerYarn = "yarn"
	ManagerBun  = "bun"
)

// NodeMinVersion is the oldest Node.js release the presets are expected to
// work with.
const NodeMinVersion = ">=18.17.0"

type preset struct {
	argv       []string
	minVersion string
}

var presets = map[string]preset{
	ManagerNPM:  {argv: []string{"npm", "install"}, minVersion: ">=7.0.0"},
	ManagerPNPM: {argv: []string{"pnpm", "install"}, minVersion: ">=8.0.0"},
	ManagerYarn: {argv: []string{"yarn", "install"}, minVersion: ">=1.22.0"},
	ManagerBun:  {argv: []string{"bun", "install"}, minVersion: ">=1.0.0"},
}

// Preset returns the install command for a package manager.
func Preset(name string) ([]string, error) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown package manager %q: supported are %s",
			name, strings.Join(PresetNames(), ", "))
	}
	return append([]string(nil), p.argv...), nil
}

// MinVersion returns the default minimum version constraint for a package
// manager binary, or "" when none is known.
func MinVersion(bin string) string {
	return presets[bin].minVersion
}

// PresetNames returns the supported package manager names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
