package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		// config commands report invalid configuration themselves
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("configuration is invalid:\n%w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid.")
			return nil
		},
	}

	var asTOML bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asTOML {
				return toml.NewEncoder(cmd.OutOrStdout()).Encode(a.cfg)
			}
			return render(cmd.OutOrStdout(), "yaml", a.cfg)
		},
	}
	showCmd.Flags().BoolVar(&asTOML, "toml", false, "Print as TOML instead of YAML")

	cmd.AddCommand(validateCmd, showCmd)
	return cmd
}
