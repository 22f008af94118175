// Package cli defines the Cobra command tree for the scaffoldr CLI. Running
// the root command with no arguments scaffolds the project layout in the
// current directory and installs dependencies. Subcommands inspect layouts,
// verify an existing tree, diagnose the installer, and manage settings.
// Command implementations delegate to internal packages and only handle
// flags, output formatting, and exit status.
package cli
