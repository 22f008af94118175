package cli

import (
	"fmt"

	"github.com/scaffoldr/scaffoldr/internal/scaffold"
	"github.com/spf13/cobra"
)

func newVerifyCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every layout directory exists",
		Long: `Check the base directory against the layout without changing anything.
Exits with status 1 if any directory is missing or blocked by a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := resolveLayout()
			if err != nil {
				return err
			}
			base, err := resolveBaseDir(g.dir)
			if err != nil {
				return err
			}

			status, err := scaffold.Check(base, l.Paths())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Verifying %s against layout %s:\n", base, l.Name)
			for _, p := range status.Present {
				fmt.Fprintf(out, "  [ OK ] %s\n", p)
			}
			for _, p := range status.Missing {
				fmt.Fprintf(out, "  [MISS] %s\n", p)
			}
			for _, p := range status.Conflicting {
				fmt.Fprintf(out, "  [FAIL] %s is blocked by a file\n", p)
			}

			if status.Complete() {
				fmt.Fprintf(out, "\nAll %d directories present.\n", len(status.Present))
				return nil
			}
			return &ExitError{
				Code: 1,
				Err: fmt.Errorf("%d missing, %d blocked of %d directories",
					len(status.Missing), len(status.Conflicting), len(l.Directories)),
			}
		},
	}
}
