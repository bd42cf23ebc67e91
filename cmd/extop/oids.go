package main

import (
	"github.com/spf13/cobra"
)

type oidView struct {
	OIDs   []string `json:"oids" yaml:"oids"`
	Policy string   `json:"duplicatePolicy" yaml:"duplicatePolicy"`
}

func newOIDsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "oids",
		Short: "List response OIDs with a registered factory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd.OutOrStdout(), a.cfg.Output.Format, oidView{
				OIDs:   a.registry.OIDs(),
				Policy: a.registry.Policy().String(),
			})
		},
	}
}
