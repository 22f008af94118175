package cli

import (
	"fmt"

	"github.com/scaffoldr/scaffoldr/internal/layout"
	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect, validate, and export directory layouts",
	}
	cmd.AddCommand(newLayoutShowCmd(), newLayoutValidateCmd(), newLayoutInitCmd())
	return cmd
}

func newLayoutShowCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective directory list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := resolveLayout()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asYAML {
				data, err := layout.Marshal(l)
				if err != nil {
					return err
				}
				fmt.Fprint(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "Layout: %s (%d directories)\n", l.Name, len(l.Directories))
			if l.Description != "" {
				fmt.Fprintf(out, "  %s\n", l.Description)
			}
			for _, d := range l.Directories {
				fmt.Fprintf(out, "  %s\n", d)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the layout as YAML")
	return cmd
}

func newLayoutValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a layout file against the layout schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Layout validation: %s\n", path)

			result, err := layout.ValidateFile(path)
			if err != nil {
				fmt.Fprintf(out, "  [FAIL] %v\n", err)
				return &ExitError{Code: 1, Err: fmt.Errorf("layout validation failed: %w", err), Reported: true}
			}

			if result.Valid {
				l, err := layout.Load(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  [ OK ] Valid layout: %s (%d directories)\n", l.Name, len(l.Directories))
				return nil
			}

			fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "    - %s\n", issue)
			}
			return &ExitError{
				Code:     1,
				Err:      fmt.Errorf("layout %s has %d validation issue(s)", path, len(result.Issues)),
				Reported: true,
			}
		},
	}
}

func newLayoutInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write the built-in layout to a file as a starting point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := layout.WriteFile(args[0], layout.Default(), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Edit it, then run with --layout %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
