package main

import (
	"github.com/spf13/cobra"
)

var (
	sortRange   []string
	sortInPlace bool
)

func init() {
	sortCmd.Flags().StringSliceVar(&sortRange, "select", nil, "Sort only this span: position, range a:b, or author name")
	sortCmd.Flags().BoolVar(&sortInPlace, "in-place", false, "Overwrite the input table instead of lal_inout.txt")
	rootCmd.AddCommand(sortCmd)
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort authors alphabetically and save",
	Long: `Sort authors by "Last,First", ignoring case, and save the table.

With --select only the span from the first to the last selected position is
sorted; everything outside it stays put.

Examples:
  lal sort
  lal sort --select 3:40
  lal sort --select Goelzer --select Zwally`,
	Args: cobra.NoArgs,
	RunE: runSort,
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	sess := mustOpenSession(cfg)
	list := sess.List()

	status := "sorted all"
	if len(sortRange) > 0 {
		if _, err := applySelection(list, sortRange); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		list.SortSelection()
		status = "sorted selection"
	} else {
		list.SortAll()
	}

	mustSave(cfg, sess, status, sortInPlace)
	return nil
}
