package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lal-tools/lal/internal/tui"
)

var editLogFile string

func init() {
	editCmd.Flags().StringVar(&editLogFile, "log-file", "", "Write logs to this file while the editor runs")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Rearrange the author list interactively",
	Long: `Open the author list in a terminal editor.

Mouse:
  click              select one author
  ctrl/alt+click     add or remove an author from the selection
  shift+click        select a range
  drag a selection   move the selected authors as one block

Keys:
  d delete   a sort all   s sort selection   w save   p parse
  c copy citation   ? help   q quit`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if editLogFile != "" {
		l, err := newLogger(editLogFile)
		if err != nil {
			exitWithError(ExitConfigError, "opening log file: %v", err)
		}
		logger = l
	}

	cfg := mustLoadConfig()
	sess := mustOpenSession(cfg)

	logger.Info("starting editor", zap.String("input", cfg.InputPath()), zap.Int("authors", sess.List().Len()))
	return tui.Run(sess, tui.Options{
		Paths:    outputPaths(cfg, false),
		Cooldown: cfg.ScrollCooldown,
		Logger:   logger,
	})
}
