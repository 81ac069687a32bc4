package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lal-tools/lal/internal/config"
)

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration after merging the config file,
.env and LAL_* environment variables, and command-line flags.

Config files are read from ./lal.yml, then ~/.config/lal/config.yml.

Keys:
  input           Author table to load
  output_dir      Directory receiving output files
  inout_file      Round-trip table name
  word_file       Citation block name
  list_file       Plain list name
  sorted_file     Sorted list name
  workbook_file   Optional .xlsx workbook name
  sentinels       Affiliation placeholders meaning "none"
  scroll_cooldown Pause after auto-scrolling during a drag (e.g. 500ms)`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a lal.yml with default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	Input          string   `json:"input"`
	OutputDir      string   `json:"output_dir"`
	InoutFile      string   `json:"inout_file"`
	WordFile       string   `json:"word_file"`
	ListFile       string   `json:"list_file"`
	SortedFile     string   `json:"sorted_file"`
	WorkbookFile   string   `json:"workbook_file,omitempty"`
	Sentinels      []string `json:"sentinels"`
	ScrollCooldown string   `json:"scroll_cooldown"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	resp := ConfigResponse{
		Input:          cfg.InputPath(),
		OutputDir:      cfg.OutputDir,
		InoutFile:      cfg.OutputPath(cfg.InoutFile),
		WordFile:       cfg.OutputPath(cfg.WordFile),
		ListFile:       cfg.OutputPath(cfg.ListFile),
		SortedFile:     cfg.OutputPath(cfg.SortedFile),
		WorkbookFile:   cfg.OutputPath(cfg.WorkbookFile),
		Sentinels:      cfg.SentinelSet().Values(),
		ScrollCooldown: cfg.ScrollCooldown.String(),
	}

	if !humanOutput {
		return outputJSON(resp)
	}

	fmt.Printf("input:           %s\n", resp.Input)
	fmt.Printf("output_dir:      %s\n", resp.OutputDir)
	fmt.Printf("inout_file:      %s\n", resp.InoutFile)
	fmt.Printf("word_file:       %s\n", resp.WordFile)
	fmt.Printf("list_file:       %s\n", resp.ListFile)
	fmt.Printf("sorted_file:     %s\n", resp.SortedFile)
	fmt.Printf("workbook_file:   %s\n", resp.WorkbookFile)
	fmt.Printf("sentinels:       %s\n", strings.Join(resp.Sentinels, ", "))
	fmt.Printf("scroll_cooldown: %s\n", resp.ScrollCooldown)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.LocalConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		exitWithError(ExitConfigError, "%s already exists", path)
	}

	if err := config.Default().Save(path); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		outputHuman("Wrote %s\n", path)
	} else {
		outputJSON(StatusResponse{Status: "created", Path: path})
	}
	return nil
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}
