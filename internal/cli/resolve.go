package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scaffoldr/scaffoldr/internal/config"
	"github.com/scaffoldr/scaffoldr/internal/installer"
	"github.com/scaffoldr/scaffoldr/internal/layout"
	"github.com/spf13/cobra"
)

// resolveLayout loads the layout named by --layout, SCAFFOLDR_LAYOUT or the
// config file, falling back to the built-in layout.
func resolveLayout() (*layout.Layout, error) {
	l, err := layout.Resolve(config.Get(config.KeyLayout))
	if err != nil {
		return nil, err
	}
	if err := l.Check(); err != nil {
		return nil, err
	}
	return l, nil
}

// resolveInstaller picks the installer argv and describes where it came
// from. Explicit flags win over settings, an installer command line wins
// over a package manager preset at the same level, and the layout's own
// installer is the last resort before "npm install".
func resolveInstaller(cmd *cobra.Command, l *layout.Layout) ([]string, string, error) {
	flags := cmd.Flags()
	installerFlag := flags.Changed("installer")
	managerFlag := flags.Changed("package-manager")

	line := config.Get(config.KeyInstaller)
	manager := config.Get(config.KeyPackageManager)

	switch {
	case installerFlag:
		argv, err := installer.ParseCommand(line)
		return argv, "--installer flag", err
	case managerFlag:
		argv, err := installer.Preset(manager)
		return argv, "--package-manager flag", err
	case line != "":
		argv, err := installer.ParseCommand(line)
		return argv, "installer setting", err
	case manager != "":
		argv, err := installer.Preset(manager)
		return argv, "package_manager setting", err
	case len(l.Installer) > 0:
		return append([]string(nil), l.Installer...), fmt.Sprintf("layout %s", l.Name), nil
	default:
		// Layout files may omit installer.
		return layout.Default().Installer, "default", nil
	}
}

// resolveBaseDir returns dir as an absolute path, defaulting to the working
// directory.
func resolveBaseDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory %s: %w", dir, err)
	}
	return abs, nil
}
