package cmd

import (
	"fmt"
	"time"

	"github.com/dendrascience/delium/vectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewSeedCmd creates and returns the seed subcommand for the delium CLI.
// It generates a vector file from random UUID inputs.
func NewSeedCmd(g *globals) *cobra.Command {
	var (
		outputPath  string
		opts        vectors.SeedOptions
		includeRefs bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a random vector file",
		Long: `Generate reproducibility vectors for testing delium implementations.

Each vector derives a random UUID input with a random stride and repeat, or
with a random derivation path, and records the resulting hash. A metadata
file named after the output (vectors.json -> vectors.meta.json) is written
alongside it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algorithm") {
				opts.Algorithms = []string{g.cfg.Algorithm}
			}
			start := time.Now()
			set, err := vectors.Seed(opts)
			if err != nil {
				return err
			}
			if includeRefs {
				for v := range vectors.Reference().Iterate {
					set.Add(v)
				}
			}
			set.Sort()

			if err := set.Save(outputPath); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
			metaPath := vectors.MetadataPath(outputPath)
			if err := set.GenerateMetadata(time.Now()).Save(metaPath); err != nil {
				return fmt.Errorf("failed to write %s: %w", metaPath, err)
			}
			g.log.Debug("vectors seeded",
				zap.String("output", outputPath),
				zap.Int("count", set.Len()),
				zap.Duration("elapsed", time.Since(start)),
			)

			if verbose {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Wrote %d vectors to %s\n", set.Len(), outputPath)
				fmt.Fprintf(out, "  flat: %d, path: %d\n", set.CountMode(vectors.ModeFlat), set.CountMode(vectors.ModePath))
				fmt.Fprintf(out, "  metadata: %s\n", metaPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to the vector file to write (required)")
	cmd.Flags().IntVarP(&opts.Count, "count", "c", 100, "Number of vectors to generate")
	cmd.Flags().StringSliceVarP(&opts.Algorithms, "algorithm", "a", nil, "Algorithms to draw from (repeatable)")
	cmd.Flags().IntVar(&opts.MaxStride, "max-stride", 16, "Largest stride to generate")
	cmd.Flags().IntVar(&opts.MaxRepeat, "max-repeat", 8, "Largest repeat count to generate")
	cmd.Flags().IntVar(&opts.MaxSegments, "max-segments", 4, "Largest number of path segments to generate")
	cmd.Flags().BoolVar(&includeRefs, "with-reference", false, "Also include the reference vectors")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}
