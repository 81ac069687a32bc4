package main

import (
	"github.com/spf13/cobra"
)

var (
	saveSort    bool
	saveInPlace bool
)

func init() {
	saveCmd.Flags().BoolVar(&saveSort, "sort", false, "Sort all authors before saving")
	saveCmd.Flags().BoolVar(&saveInPlace, "in-place", false, "Overwrite the input table instead of lal_inout.txt")
	rootCmd.AddCommand(saveCmd)
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the author table in its input format",
	Long: `Write the author table to lal_inout.txt (or the input with --in-place).
The file has the same semicolon format as the input and can be loaded again.`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	sess := mustOpenSession(cfg)

	if saveSort {
		sess.List().SortAll()
	}

	mustSave(cfg, sess, "file saved", saveInPlace)
	return nil
}
