package cli

import (
	"fmt"

	"github.com/scaffoldr/scaffoldr/internal/branding"
	"github.com/scaffoldr/scaffoldr/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write settings stored at ~/.scaffoldr/config.yaml.

Every setting can also be supplied as a SCAFFOLDR_<KEY> environment variable,
which takes precedence over the file.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				key, value := args[0], args[1]
				if err := config.Set(key, value); err != nil {
					return fmt.Errorf("setting config key %q: %w", key, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Get a configuration value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !config.IsKnown(args[0]) {
					return fmt.Errorf("unknown config key %q", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List settings and their current values",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Config file: %s\n\n", config.FilePath())
				for _, key := range config.Keys() {
					value := config.Get(key)
					if value == "" {
						value = "(unset)"
					}
					fmt.Fprintf(out, "  %-16s %s\n", key, value)
					fmt.Fprintf(out, "  %-16s %s\n", "", config.Describe(key))
					fmt.Fprintf(out, "  %-16s env: %s\n", "", branding.EnvVar(key))
				}
				return nil
			},
		},
	)
	return cmd
}
