package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deleteSelect  []string
	deleteInPlace bool
)

func init() {
	deleteCmd.Flags().StringSliceVar(&deleteSelect, "select", nil, "Authors to delete: position, range a:b, or author name (repeatable)")
	deleteCmd.Flags().BoolVar(&deleteInPlace, "in-place", false, "Overwrite the input table instead of lal_inout.txt")
	deleteCmd.MarkFlagRequired("select")
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete authors and save",
	Long: `Delete authors and save the table.

Everything from the first to the last selected position is removed,
including unselected authors in between.

Examples:
  lal delete --select 4
  lal delete --select 4:6
  lal delete --select "Goelzer, Heiko"`,
	Args: cobra.NoArgs,
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	sess := mustOpenSession(cfg)

	if _, err := applySelection(sess.List(), deleteSelect); err != nil {
		exitWithError(ExitError, "%v", err)
	}
	n := sess.List().DeleteSelected()

	mustSave(cfg, sess, fmt.Sprintf("deleted %d", n), deleteInPlace)
	return nil
}
