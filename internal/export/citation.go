// Package export renders an ordered author list into manuscript-ready text.
package export

import (
	"slices"
	"strconv"
	"strings"

	"github.com/lal-tools/lal/internal/affiliation"
	"github.com/lal-tools/lal/internal/author"
)

// Mode selects one of the text layouts.
type Mode string

const (
	ModeCitation Mode = "citation" // names with affiliation numbers, then the numbered affiliations
	ModeList     Mode = "list"     // one name per line in display order
	ModeSorted   Mode = "sorted"   // one name per line, alphabetical
)

// CitationBlock renders names followed by their affiliation numbers and then
// the numbered affiliations, one per line.
//
//	Ann Lee1, Bo Ng2,1
//
//	(1) X
//	(2) Y
func CitationBlock(authors []author.Author, reg *affiliation.Registry) string {
	var b strings.Builder

	for i, a := range authors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.FullName())
		if i < len(reg.Indices) {
			b.WriteString(joinInts(reg.Indices[i]))
		}
	}

	b.WriteString("\n\n")

	for i, name := range reg.Names {
		b.WriteString("(")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(") ")
		b.WriteString(name)
		b.WriteString("\n")
	}

	return b.String()
}

// PlainList renders one "First Last" line per author.
func PlainList(authors []author.Author) string {
	var b strings.Builder
	for _, a := range authors {
		b.WriteString(a.FullName())
		b.WriteString("\n")
	}
	return b.String()
}

// SortedList renders the plain list after ordering rows by their display
// label, ignoring case. The input slice is left untouched.
func SortedList(rows []author.Row) string {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b author.Row) int {
		return author.CompareText(a.Label(), b.Label())
	})

	authors := make([]author.Author, len(sorted))
	for i, r := range sorted {
		authors[i] = r.Author
	}
	return PlainList(authors)
}

// Render produces the layout for mode.
func Render(mode Mode, rows []author.Row, reg *affiliation.Registry) string {
	authors := make([]author.Author, len(rows))
	for i, r := range rows {
		authors[i] = r.Author
	}

	switch mode {
	case ModeList:
		return PlainList(authors)
	case ModeSorted:
		return SortedList(rows)
	default:
		return CitationBlock(authors, reg)
	}
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
