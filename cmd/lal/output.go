package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lal-tools/lal/internal/order"
	"github.com/lal-tools/lal/internal/session"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Debug("command failed", zap.String("error", msg))
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	_ = logger.Sync()
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReportResponse is the response for commands that write files.
type ReportResponse struct {
	Status string `json:"status"`
	session.Report
	Copied bool `json:"copied,omitempty"`
}

// ListEntry is one row of the display order.
type ListEntry struct {
	Position int    `json:"position"` // 1-based place in the display order
	First    string `json:"first"`
	Last     string `json:"last"`
	Index    int    `json:"index"` // row in the loaded table
	Label    string `json:"label"`
}

// ListResponse is the response for the list command.
type ListResponse struct {
	Count   int         `json:"count"`
	Authors []ListEntry `json:"authors"`
}

func newListResponse(entries []order.Entry) ListResponse {
	resp := ListResponse{Count: len(entries), Authors: make([]ListEntry, len(entries))}
	for i, e := range entries {
		resp.Authors[i] = ListEntry{
			Position: i + 1,
			First:    e.Key.First,
			Last:     e.Key.Last,
			Index:    e.Index,
			Label:    e.Label(),
		}
	}
	return resp
}

// outputReport prints the outcome of a save or export.
func outputReport(resp ReportResponse) {
	if !humanOutput {
		outputJSON(resp)
		return
	}

	outputHuman("%s (%d authors", resp.Status, resp.Authors)
	if resp.Affiliations > 0 {
		outputHuman(", %d affiliations", resp.Affiliations)
	}
	outputHuman(")\n")
	for _, f := range resp.Files {
		outputHuman("  %s\n", f)
	}
	if len(resp.Ambiguous) > 0 {
		names := make([]string, len(resp.Ambiguous))
		for i, k := range resp.Ambiguous {
			names[i] = k.String()
		}
		outputHuman("warning: names shared by several rows: %s\n", strings.Join(names, "; "))
	}
	if resp.Copied {
		outputHuman("citation copied to clipboard\n")
	}
}
