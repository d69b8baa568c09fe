package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dendrascience/delium/dhash"
	"github.com/spf13/cobra"
)

// NewAlgorithmsCmd creates and returns the algorithms subcommand.
func NewAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported digest algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tBYTES\tHEX")
			for _, name := range dhash.Algorithms() {
				alg, _ := dhash.AlgorithmByName(name)
				fmt.Fprintf(tw, "%s\t%d\t%d\n", alg.Name(), alg.Size(), alg.HexLen())
			}
			return tw.Flush()
		},
	}
}
