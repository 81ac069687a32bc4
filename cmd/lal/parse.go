package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lal-tools/lal/internal/clipboard"
)

var (
	parseXLSX bool
	parseCopy bool
	parseSort bool
)

func init() {
	parseCmd.Flags().BoolVar(&parseXLSX, "xlsx", false, "Also write an .xlsx workbook of authors and affiliations")
	parseCmd.Flags().BoolVar(&parseCopy, "copy", false, "Copy the citation block to the clipboard")
	parseCmd.Flags().BoolVar(&parseSort, "sort", false, "Sort all authors before exporting")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Write the citation block and name lists",
	Long: `Write the formatted outputs for the author table in its current order:

  lal_parsed_word.txt    "First Last1,2, ..." followed by "(1) affiliation" lines
  lal_parsed_list.txt    one "First Last" per line
  lal_parsed_sorted.txt  the same list sorted alphabetically

Examples:
  lal parse
  lal parse --xlsx --copy
  lal parse --input authors.txt --human`,
	Args: cobra.NoArgs,
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	sess := mustOpenSession(cfg)

	if parseSort {
		sess.List().SortAll()
	}

	report, err := sess.ExportAll(outputPaths(cfg, parseXLSX))
	if err != nil {
		exitWithSessionError(err)
	}

	resp := ReportResponse{Status: "all files parsed", Report: report}
	if parseCopy {
		text, err := sess.Citation()
		if err != nil {
			exitWithSessionError(err)
		}
		if err := clipboard.Copy(text); err != nil {
			exitWithError(ExitError, "copying citation: %v", err)
		}
		resp.Copied = true
		logger.Debug("copied citation", zap.Int("bytes", len(text)))
	}

	outputReport(resp)
	return nil
}
