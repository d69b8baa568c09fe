package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dendrascience/delium/dhash"
	"github.com/spf13/cobra"
)

// NewPathCmd creates and returns the path subcommand for the delium CLI.
// It validates a derivation path without deriving anything.
func NewPathCmd(g *globals) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "path PATH",
		Short: "Validate a derivation path",
		Long: `Validate a derivation path and list its segments.

A path is a "/" separated list of "addon#stride" segments. The addon may be
empty; the stride must be a positive decimal integer. An empty PATH is valid
and has no segments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, err := dhash.ParsePath(args[0])
			if err != nil {
				return err
			}
			for i, seg := range segments {
				if seg.Stride == 0 {
					return fmt.Errorf("segment %d %q: %w", i, seg.String(), dhash.ErrInvalidStride)
				}
			}
			if quiet {
				return nil
			}

			out := cmd.OutOrStdout()
			if len(segments) == 0 {
				fmt.Fprintln(out, "empty path: the plain digest is returned")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SEGMENT\tADDON\tSTRIDE")
			for i, seg := range segments {
				fmt.Fprintf(tw, "%d\t%q\t%d\n", i, seg.Addon, seg.Stride)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only report errors")

	return cmd
}
