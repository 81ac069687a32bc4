package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the authors in display order",
	Long: `Show the authors in display order.

Each author is shown with its position (used by --select and --to) and its
label "Last,First,row", where row is its place in the loaded table.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	sess := mustOpenSession(cfg)

	resp := newListResponse(sess.List().Entries())
	if !humanOutput {
		return outputJSON(resp)
	}

	for _, e := range resp.Authors {
		outputHuman("%4d  %s\n", e.Position, e.Label)
	}
	outputHuman("%d authors\n", resp.Count)
	return nil
}
