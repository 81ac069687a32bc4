package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lal-tools/lal/internal/affiliation"
	"github.com/lal-tools/lal/internal/author"
)

// Sheet names used in the workbook export.
const (
	AuthorsSheet      = "Authors"
	AffiliationsSheet = "Affiliations"
)

// WriteWorkbook writes the ordered authors and the numbered affiliations to an
// xlsx file at path, replacing any existing file.
func WriteWorkbook(path string, authors []author.Author, reg *affiliation.Registry) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", AuthorsSheet)
	if _, err := f.NewSheet(AffiliationsSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	header := []interface{}{"Position", "First", "Last", "Affiliations"}
	if err := f.SetSheetRow(AuthorsSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, a := range authors {
		var ids string
		if i < len(reg.Indices) {
			ids = joinInts(reg.Indices[i])
		}
		row := []interface{}{i + 1, a.First, a.Last, ids}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(AuthorsSheet, cell, &row); err != nil {
			return fmt.Errorf("writing author %d: %w", i+1, err)
		}
	}

	header = []interface{}{"Index", "Affiliation"}
	if err := f.SetSheetRow(AffiliationsSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, name := range reg.Names {
		row := []interface{}{i + 1, name}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing affiliation %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(AffiliationsSheet, cell, &row); err != nil {
			return fmt.Errorf("writing affiliation %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
