// Package storage reads and writes the semicolon-delimited author table.
//
// Each row has exactly seven fields and there is no header:
//
//	First;Last;Group1;Group2;Group3;Group4;Group5
package storage

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lal-tools/lal/internal/author"
)

// FieldsPerRow is the number of fields in every table row.
const FieldsPerRow = 2 + author.MaxAffiliations

// Separator is the field delimiter of the table format.
const Separator = ';'

// ErrEmptyInput is returned when a table holds no author rows.
var ErrEmptyInput = errors.New("no authors in input")

// RowError reports a row that could not be read.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Parse reads author rows from r. Rows with the wrong number of fields are
// rejected and reported; the remaining rows are still returned.
func Parse(r io.Reader) ([]author.Author, []error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.Comma = Separator
	cr.FieldsPerRecord = FieldsPerRow
	cr.LazyQuotes = true

	var authors []author.Author
	var errs []error

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.StartLine
			}
			if errors.Is(err, csv.ErrFieldCount) {
				errs = append(errs, &RowError{
					Line: line,
					Err:  fmt.Errorf("expected %d fields, got %d", FieldsPerRow, len(record)),
				})
				continue
			}
			errs = append(errs, &RowError{Line: line, Err: err})
			break
		}

		a := author.Author{First: record[0], Last: record[1]}
		copy(a.Affiliations[:], record[2:])
		authors = append(authors, a)
	}

	return authors, errs
}

// ReadAll loads the author table at path. Any malformed row fails the load.
func ReadAll(path string) ([]author.Author, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening author table: %w", err)
	}
	defer f.Close()

	authors, errs := Parse(f)
	if len(errs) > 0 {
		return nil, fmt.Errorf("parsing %s: %w", path, errors.Join(errs...))
	}
	if len(authors) == 0 {
		return nil, fmt.Errorf("parsing %s: %w", path, ErrEmptyInput)
	}

	return authors, nil
}

// Write writes authors to w in table format.
func Write(w io.Writer, authors []author.Author) error {
	cw := csv.NewWriter(w)
	cw.Comma = Separator

	record := make([]string, FieldsPerRow)
	for i, a := range authors {
		record[0] = a.First
		record[1] = a.Last
		copy(record[2:], a.Affiliations[:])
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing author %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteAll writes authors to path, replacing existing content.
func WriteAll(path string, authors []author.Author) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating author table: %w", err)
	}

	if err := Write(f, authors); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing author table: %w", err)
	}
	return nil
}
