package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/dendrascience/delium/vectors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errVerificationFailed = errors.New("verification failed")

var (
	passLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

// NewVerifyCmd creates and returns the verify subcommand for the delium CLI.
// It checks every vector of a vector file against this implementation.
func NewVerifyCmd(g *globals) *cobra.Command {
	var (
		vectorPath string
		workers    int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a vector file or the reference vectors",
		Long: `Verify reproducibility vectors against this implementation.

Every vector is derived again and compared with its recorded hash. Without
--file (and without DELIUM_VECTORS) the built-in reference vectors are
checked. The command exits non-zero when any vector fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("file") {
				vectorPath = g.cfg.VectorFile
			}
			if !cmd.Flags().Changed("workers") {
				workers = g.cfg.Workers
			}

			set := vectors.Reference()
			source := "reference vectors"
			if vectorPath != "" {
				var err error
				set, err = vectors.Load(vectorPath)
				if err != nil {
					return err
				}
				source = vectorPath
			}
			if set.Len() == 0 {
				return fmt.Errorf("%s: %w", source, vectors.ErrEmptySet)
			}

			out := cmd.OutOrStdout()
			if verbose {
				fmt.Fprintf(out, "Verifying %d vectors from %s\n", set.Len(), source)
			}

			start := time.Now()
			report, err := vectors.Verify(cmd.Context(), set, workers)
			g.log.Debug("verification finished",
				zap.String("source", source),
				zap.Int("checked", report.Checked),
				zap.Int("failures", len(report.Failures)),
				zap.Duration("elapsed", time.Since(start)),
			)
			if err != nil {
				return err
			}

			failed := make(map[int]bool, len(report.Failures))
			for _, f := range report.Failures {
				failed[f.Index] = true
				fmt.Fprintf(out, "%s %d %s\n", failLabel("FAIL"), f.Index, f.Vector)
				fmt.Fprintf(out, "  - %v\n", f.Err)
			}
			if verbose {
				for i := range set.Len() {
					if !failed[i] {
						fmt.Fprintf(out, "%s %d %s\n", passLabel("PASS"), i, set.Get(i))
					}
				}
			}

			fmt.Fprintf(out, "\nVerification complete:\n")
			fmt.Fprintf(out, "  Vectors checked: %d\n", report.Checked)
			fmt.Fprintf(out, "  Failures: %d\n", len(report.Failures))

			if !report.OK() {
				return fmt.Errorf("%w: %d of %d vectors", errVerificationFailed, len(report.Failures), report.Checked)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&vectorPath, "file", "f", "", "Vector file to verify (default: reference vectors)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent workers, 0 for one per CPU")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}
