package session

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lal-tools/lal/internal/affiliation"
	"github.com/lal-tools/lal/internal/author"
	"github.com/lal-tools/lal/internal/export"
	"github.com/lal-tools/lal/internal/storage"
)

// Paths names the files written by Save and ExportAll.
type Paths struct {
	Inout    string // round-trip table
	Word     string // citation block
	List     string // plain list
	Sorted   string // sorted list
	Workbook string // optional xlsx, empty to skip
}

// Report describes a completed save or export.
type Report struct {
	Files        []string     `json:"files"`
	Authors      int          `json:"authors"`
	Affiliations int          `json:"affiliations,omitempty"`
	Ambiguous    []author.Key `json:"ambiguous,omitempty"`
}

// Save writes the current display order as a table reloadable as input.
func (s *Session) Save(path string) (Report, error) {
	res, err := s.Resolve()
	if err != nil {
		return Report{}, err
	}

	if err := storage.WriteAll(path, res.Authors()); err != nil {
		return Report{}, fmt.Errorf("saving %s: %w", path, err)
	}

	s.log.Info("saved author table", zap.String("path", path), zap.Int("authors", len(res.Rows)))
	return Report{Files: []string{path}, Authors: len(res.Rows), Ambiguous: res.Ambiguous}, nil
}

// ExportAll writes the citation block, the plain list and the sorted list,
// plus the workbook when paths.Workbook is set.
func (s *Session) ExportAll(paths Paths) (Report, error) {
	res, err := s.Resolve()
	if err != nil {
		return Report{}, err
	}

	authors := res.Authors()
	reg := affiliation.Build(authors, s.sentinels)
	report := Report{Authors: len(authors), Affiliations: reg.Len(), Ambiguous: res.Ambiguous}

	targets := []struct {
		mode export.Mode
		path string
	}{
		{export.ModeCitation, paths.Word},
		{export.ModeList, paths.List},
		{export.ModeSorted, paths.Sorted},
	}
	for _, t := range targets {
		if t.path == "" {
			continue
		}
		text := export.Render(t.mode, res.Rows, reg)
		if err := os.WriteFile(t.path, []byte(text), 0644); err != nil {
			return report, fmt.Errorf("writing %s: %w", t.path, err)
		}
		report.Files = append(report.Files, t.path)
		s.log.Info("wrote export", zap.String("mode", string(t.mode)), zap.String("path", t.path))
	}

	if paths.Workbook != "" {
		if err := export.WriteWorkbook(paths.Workbook, authors, reg); err != nil {
			return report, fmt.Errorf("writing %s: %w", paths.Workbook, err)
		}
		report.Files = append(report.Files, paths.Workbook)
		s.log.Info("wrote workbook", zap.String("path", paths.Workbook))
	}

	return report, nil
}

// Render returns one text layout for the current display order.
func (s *Session) Render(mode export.Mode) (string, error) {
	res, err := s.Resolve()
	if err != nil {
		return "", err
	}
	reg := affiliation.Build(res.Authors(), s.sentinels)
	return export.Render(mode, res.Rows, reg), nil
}

// Citation returns the citation block for the current display order.
func (s *Session) Citation() (string, error) {
	return s.Render(export.ModeCitation)
}
