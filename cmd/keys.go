package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/bnema/lapwatch/internal/adapters/render/display"
	"github.com/spf13/cobra"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the interactive key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, binding := range display.DefaultKeyMap().Bindings() {
				help := binding.Help()
				if _, err := fmt.Fprintf(w, "%s\t%s\n", help.Key, help.Desc); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}
