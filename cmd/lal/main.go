// Package main provides the lal CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lal-tools/lal/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	verbose     bool
	inputPath   string
	configPath  string

	logger = zap.NewNop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lal",
	Short: "Long author list editor",
	Long: `lal reorders long author lists and formats them for manuscripts.

It loads a semicolon-delimited table (first; last; up to five affiliations),
lets you rearrange it interactively or with headless commands, and writes:
  - lal_inout.txt          the edited table, reloadable as input
  - lal_parsed_word.txt    names with numbered affiliations
  - lal_parsed_list.txt    one name per line
  - lal_parsed_sorted.txt  one name per line, alphabetical

Headless commands output JSON by default; use --human for text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadDotEnv()

		// The editor owns the terminal; it sets up its own logger.
		if cmd.Name() == "edit" {
			return nil
		}

		var err error
		logger, err = newLogger("stderr")
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Author table to load (overrides config and LAL_INPUT)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./lal.yml, then ~/.config/lal/config.yml)")
	rootCmd.Version = Version
}

// newLogger builds a JSON logger writing to output. Only warnings are shown
// unless --verbose is set.
func newLogger(output string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
