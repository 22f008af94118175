package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scaffoldr/scaffoldr/internal/branding"
	"github.com/scaffoldr/scaffoldr/internal/config"
	"github.com/scaffoldr/scaffoldr/internal/installer"
	"github.com/scaffoldr/scaffoldr/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// newInstaller builds the dependency installer for a resolved argv. Tests
// replace it to avoid spawning real package managers.
var newInstaller = func(argv []string, dir string, stdout, stderr io.Writer) installer.Installer {
	return &installer.Command{Argv: argv, Dir: dir, Stdout: stdout, Stderr: stderr}
}

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	dir            string
	layoutPath     string
	installer      string
	packageManager string
}

type setupOptions struct {
	dryRun      bool
	skipInstall bool
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	o := &setupOptions{}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a web-application directory skeleton in the current
directory and then runs the package manager to install dependencies.

Every directory is created together with its missing parents; directories
that already exist are left alone, so running it twice is safe. If the
installer exits nonzero the command exits with status 1 and the created
directories stay in place.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, g, o)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.dir, "dir", "", "Base directory to scaffold into (default: current directory)")
	pf.StringVar(&g.layoutPath, "layout", "", "Layout YAML file to use instead of the built-in layout")
	pf.StringVar(&g.installer, "installer", "", `Installer command line (default: layout installer or "npm install")`)
	pf.StringVar(&g.packageManager, "package-manager", "", "Package manager preset: "+strings.Join(installer.PresetNames(), ", "))

	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "Show what would be created and run without changing anything")
	cmd.Flags().BoolVar(&o.skipInstall, "skip-install", false, "Create the directory structure only")

	cmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newLayoutCmd(),
		newVerifyCmd(g),
		newDoctorCmd(g),
	)
	return cmd
}

// loadConfig reads the user config and binds the persistent flags so that
// flags override SCAFFOLDR_* variables, which override the config file.
func loadConfig(cmd *cobra.Command) error {
	config.Reset()
	if err := config.Load(); err != nil {
		return err
	}
	bindings := map[string]string{
		config.KeyLayout:         "layout",
		config.KeyInstaller:      "installer",
		config.KeyPackageManager: "package-manager",
	}
	for key, flagName := range bindings {
		if f := cmd.Flags().Lookup(flagName); f != nil {
			if err := config.BindFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func runSetup(cmd *cobra.Command, g *globalOptions, o *setupOptions) error {
	out := cmd.OutOrStdout()

	l, err := resolveLayout()
	if err != nil {
		return err
	}
	argv, source, err := resolveInstaller(cmd, l)
	if err != nil {
		return err
	}
	base, err := resolveBaseDir(g.dir)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Creating project structure...")
	if _, err := scaffold.EnsureStructure(out, base, l.Paths(), scaffold.Options{DryRun: o.dryRun}); err != nil {
		return err
	}

	if o.dryRun {
		fmt.Fprintf(out, "\nWould run: %s (%s) in %s\n", strings.Join(argv, " "), source, base)
		return nil
	}

	fmt.Fprintln(out, "\nStructure created successfully!")
	if o.skipInstall {
		fmt.Fprintln(out, "Skipping dependency installation.")
		return nil
	}
	fmt.Fprintf(out, "Installing dependencies...\n\n")

	inst := newInstaller(argv, base, out, cmd.ErrOrStderr())
	if err := inst.Install(cmd.Context()); err != nil {
		var installErr *installer.InstallError
		if errors.As(err, &installErr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error installing dependencies: %v\n", installErr)
			return &ExitError{Code: 1, Err: err, Reported: true}
		}
		return fmt.Errorf("installing dependencies: %w", err)
	}

	fmt.Fprintln(out, "\nProject setup complete!")
	return nil
}

// Execute runs the root command with build info injected via ldflags. Errors
// are reported on stderr before being returned; use ExitCode to map them to
// a process status.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		return err
	}
	return nil
}
