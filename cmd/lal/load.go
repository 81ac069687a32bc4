package main

import (
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/lal-tools/lal/internal/config"
	"github.com/lal-tools/lal/internal/session"
	"github.com/lal-tools/lal/internal/storage"
)

// mustLoadConfig loads configuration and applies the --input flag, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if inputPath != "" {
		cfg.Input = inputPath
	}
	return cfg
}

// mustOpenSession loads the author table named by cfg, exits on error.
func mustOpenSession(cfg *config.Config) *session.Session {
	path := cfg.InputPath()
	authors, err := storage.ReadAll(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			exitWithError(ExitDataError, "author table not found: %s\n\nSet --input, LAL_INPUT or 'input' in lal.yml.", path)
		}
		exitWithError(ExitDataError, "loading authors: %v", err)
	}

	logger.Debug("loaded author table", zap.String("path", path), zap.Int("authors", len(authors)))
	return session.New(authors,
		session.WithLogger(logger),
		session.WithSentinels(cfg.SentinelSet()),
	)
}

// outputPaths returns the files written by save and parse. The workbook is
// included when withWorkbook is set or the config names one.
func outputPaths(cfg *config.Config, withWorkbook bool) session.Paths {
	paths := session.Paths{
		Inout:  cfg.OutputPath(cfg.InoutFile),
		Word:   cfg.OutputPath(cfg.WordFile),
		List:   cfg.OutputPath(cfg.ListFile),
		Sorted: cfg.OutputPath(cfg.SortedFile),
	}
	switch {
	case cfg.WorkbookFile != "":
		paths.Workbook = cfg.OutputPath(cfg.WorkbookFile)
	case withWorkbook:
		paths.Workbook = cfg.OutputPath(config.DefaultWorkbookFile)
	}
	return paths
}

// mustSave writes the edited order and reports the result. With inPlace the
// input table is overwritten instead of the round-trip file.
func mustSave(cfg *config.Config, sess *session.Session, status string, inPlace bool) {
	path := outputPaths(cfg, false).Inout
	if inPlace {
		path = cfg.InputPath()
	}

	report, err := sess.Save(path)
	if err != nil {
		exitWithSessionError(err)
	}
	outputReport(ReportResponse{Status: status, Report: report})
}

// exitWithSessionError maps a save or export failure to an exit code.
func exitWithSessionError(err error) {
	if errors.Is(err, session.ErrUnknownAuthor) {
		exitWithError(ExitDataError, "%v", err)
	}
	exitWithError(ExitError, "%v", err)
}
