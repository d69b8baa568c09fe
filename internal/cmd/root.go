package cmd

import (
	"github.com/dendrascience/delium/internal/config"
	"github.com/dendrascience/delium/internal/logging"
	"github.com/dendrascience/delium/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globals is the state shared by every subcommand once flags are parsed.
type globals struct {
	envFile string
	debug   bool

	cfg config.Config
	log *zap.Logger
}

func (g *globals) load(cmd *cobra.Command) error {
	var files []string
	if g.envFile != "" {
		files = append(files, g.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = g.debug
	}
	g.cfg = cfg
	g.log = logging.New(cfg.Debug)
	g.log.Debug("configuration loaded",
		zap.String("algorithm", cfg.Algorithm),
		zap.Int("workers", cfg.Workers),
		zap.String("vectors", cfg.VectorFile),
	)
	return nil
}

// NewRootCmd creates and returns the root cobra command for the delium CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	g := &globals{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "delium",
		Short: "delium - iterative stride-delete hash derivation",
		Long: `delium derives hashes by repeatedly digesting a hex hash after removing
every n-th character, optionally chained over a path of "addon#stride" segments.

Use subcommands to perform different operations:
  - derive: derive a hash from an input
  - path: validate a derivation path
  - seed: generate a vector file
  - verify: verify a vector file or the reference vectors
  - algorithms: list digest algorithms`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = g.log.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.envFile, "env-file", "", "Read defaults from this env file instead of ./.env")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging on stderr")

	groupDerivation := "derivation"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupDerivation,
		Title: "Derivation",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	deriveCmd := NewDeriveCmd(g)
	pathCmd := NewPathCmd(g)
	seedCmd := NewSeedCmd(g)
	verifyCmd := NewVerifyCmd(g)
	algorithmsCmd := NewAlgorithmsCmd()

	deriveCmd.GroupID = groupDerivation
	pathCmd.GroupID = groupDerivation
	seedCmd.GroupID = groupUtilities
	verifyCmd.GroupID = groupUtilities
	algorithmsCmd.GroupID = groupUtilities

	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(algorithmsCmd)

	return rootCmd
}
