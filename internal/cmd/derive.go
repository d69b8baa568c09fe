package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dendrascience/delium/dhash"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoInput = errors.New("no input: pass INPUT or --stdin")

// NewDeriveCmd creates and returns the derive subcommand for the delium CLI.
// It runs a flat derivation, or a path derivation when --path is given.
func NewDeriveCmd(g *globals) *cobra.Command {
	var (
		algorithm string
		stride    int
		repeat    int
		path      string
		fromStdin bool
		trimInput bool
		bucket    int
	)

	cmd := &cobra.Command{
		Use:   "derive [INPUT]",
		Short: "Derive a hash from an input",
		Long: `Derive a hash from INPUT (or standard input with --stdin).

Without --path the input is digested and then --repeat times every --stride-th
hex character is removed and the rest digested again. With --path the input
digest is chained through each "addon#stride" segment instead; --stride and
--repeat are ignored in that case.

Examples:
  delium derive abcdefghijklmnopqrstuvwxyz --stride 3 --repeat 5
  delium derive -a 512 abcdefghijklmnopqrstuvwxyz --path "2h4usk#5/73uytg#9/#4"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algorithm") {
				algorithm = g.cfg.Algorithm
			}
			alg, err := dhash.AlgorithmByName(algorithm)
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args, fromStdin, trimInput)
			if err != nil {
				return err
			}

			var h dhash.DerivedHash
			if cmd.Flags().Changed("path") {
				g.log.Debug("path derivation", zap.String("algorithm", alg.Name()), zap.String("path", path), zap.Int("input_bytes", len(input)))
				h, err = dhash.DerivePath(alg, input, path)
			} else {
				g.log.Debug("flat derivation", zap.String("algorithm", alg.Name()), zap.Int("stride", stride), zap.Int("repeat", repeat), zap.Int("input_bytes", len(input)))
				h, err = dhash.Derive(alg, input, stride, repeat)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if bucket > 0 {
				fmt.Fprintf(out, "%s %d\n", h, h.Bucket(bucket))
				return nil
			}
			fmt.Fprintln(out, h)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "sha-256", "Digest algorithm (see 'delium algorithms')")
	cmd.Flags().IntVarP(&stride, "stride", "s", 1, "Remove every n-th hex character between rounds")
	cmd.Flags().IntVarP(&repeat, "repeat", "r", 0, "Number of delete-and-digest rounds")
	cmd.Flags().StringVarP(&path, "path", "p", "", `Derivation path of "addon#stride" segments separated by "/"`)
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the input from standard input")
	cmd.Flags().BoolVar(&trimInput, "trim", false, "Strip one trailing newline from standard input")
	cmd.Flags().IntVar(&bucket, "bucket", 0, "Also print the bucket of the hash for this many buckets")

	return cmd
}

func readInput(cmd *cobra.Command, args []string, fromStdin, trim bool) ([]byte, error) {
	switch {
	case fromStdin && len(args) > 0:
		return nil, errors.New("INPUT and --stdin are mutually exclusive")
	case fromStdin:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		if trim {
			s := strings.TrimSuffix(string(data), "\n")
			data = []byte(strings.TrimSuffix(s, "\r"))
		}
		return data, nil
	case len(args) == 1:
		return []byte(args[0]), nil
	default:
		return nil, errNoInput
	}
}
