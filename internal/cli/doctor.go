package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/scaffoldr/scaffoldr/internal/config"
	"github.com/scaffoldr/scaffoldr/internal/installer"
	"github.com/scaffoldr/scaffoldr/internal/layout"
	"github.com/scaffoldr/scaffoldr/internal/platform"
	"github.com/scaffoldr/scaffoldr/internal/scaffold"
	"github.com/spf13/cobra"
)

func newDoctorCmd(g *globalOptions) *cobra.Command {
	var minVersion string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the installer, layout, and base directory",
		Long: `Run diagnostic checks before scaffolding: the installer is on PATH and
new enough, the layout is valid, and the base directory is writable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			problems := 0

			l, err := resolveLayout()
			problems += checkLayout(out, l, err)
			if l == nil {
				l = layout.Default()
			}

			argv, source, err := resolveInstaller(cmd, l)
			if err != nil {
				fmt.Fprintln(out, "Installer check:")
				fmt.Fprintf(out, "  [FAIL] %v\n", err)
				problems++
			} else {
				problems += checkInstaller(cmd.Context(), out, argv, source, minVersion)
			}
			checkNode(cmd.Context(), out)

			base, err := resolveBaseDir(g.dir)
			if err != nil {
				return err
			}
			problems += checkBaseDir(out, base, l)

			if problems > 0 {
				return &ExitError{Code: 1, Err: fmt.Errorf("doctor found %d problem(s)", problems)}
			}
			fmt.Fprintln(out, "\nNo problems found.")
			return nil
		},
	}

	cmd.Flags().StringVar(&minVersion, "min-version", "", "Semver constraint the installer must satisfy (default depends on the package manager)")
	return cmd
}

func checkLayout(w io.Writer, l *layout.Layout, loadErr error) int {
	fmt.Fprintln(w, "Layout check:")
	if loadErr != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", loadErr)
		return 1
	}
	source := "built-in"
	if p := config.Get(config.KeyLayout); p != "" {
		source = p
	}
	fmt.Fprintf(w, "  [ OK ] %s (%s, %d directories)\n", l.Name, source, len(l.Directories))
	return 0
}

func checkInstaller(ctx context.Context, w io.Writer, argv []string, source, constraint string) int {
	fmt.Fprintln(w, "Installer check:")
	bin := argv[0]
	fmt.Fprintf(w, "  [INFO] command: %s (%s)\n", (&installer.Command{Argv: argv}).String(), source)

	path, err := exec.LookPath(bin)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found on PATH\n", bin)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", bin, path)

	if constraint == "" {
		constraint = installer.MinVersion(bin)
	}
	if constraint == "" {
		fmt.Fprintf(w, "  [INFO] no minimum version known for %s\n", bin)
		return 0
	}

	v, ok, err := installer.CheckVersion(ctx, bin, constraint)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [WARN] could not check version: %v\n", err)
		return 0
	case !ok:
		fmt.Fprintf(w, "  [FAIL] %s %s does not satisfy %s\n", bin, v, constraint)
		return 1
	default:
		fmt.Fprintf(w, "  [ OK ] %s %s satisfies %s\n", bin, v, constraint)
		return 0
	}
}

// checkNode only warns: bun and some yarn setups install without Node.js.
func checkNode(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "Node.js check:")
	if _, err := exec.LookPath("node"); err != nil {
		fmt.Fprintln(w, "  [WARN] node not found on PATH")
		return
	}
	v, ok, err := installer.CheckVersion(ctx, "node", installer.NodeMinVersion)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [WARN] could not check version: %v\n", err)
	case !ok:
		fmt.Fprintf(w, "  [WARN] node %s is older than %s\n", v, installer.NodeMinVersion)
	default:
		fmt.Fprintf(w, "  [ OK ] node %s\n", v)
	}
}

func checkBaseDir(w io.Writer, base string, l *layout.Layout) int {
	fmt.Fprintln(w, "Base directory check:")
	if err := platform.CheckWritable(base); err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s is writable\n", base)

	status, err := scaffold.Check(base, l.Paths())
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "  [INFO] %d of %d layout directories present\n", len(status.Present), len(l.Directories))
	for _, p := range status.Conflicting {
		fmt.Fprintf(w, "  [FAIL] %s is blocked by a file\n", p)
	}
	return len(status.Conflicting)
}
