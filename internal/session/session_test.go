package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lal-tools/lal/internal/author"
	"github.com/lal-tools/lal/internal/export"
	"github.com/lal-tools/lal/internal/order"
	"github.com/lal-tools/lal/internal/storage"
)

func loadTable(t *testing.T, table string) []author.Author {
	t.Helper()
	authors, errs := storage.Parse(strings.NewReader(table))
	if len(errs) > 0 {
		t.Fatalf("parsing fixture: %v", errs)
	}
	return authors
}

func testPaths(t *testing.T) Paths {
	dir := t.TempDir()
	return Paths{
		Inout:  filepath.Join(dir, "lal_inout.txt"),
		Word:   filepath.Join(dir, "lal_parsed_word.txt"),
		List:   filepath.Join(dir, "lal_parsed_list.txt"),
		Sorted: filepath.Join(dir, "lal_parsed_sorted.txt"),
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

const twoAuthors = "Ann;Lee;X;nil;nil;nil;nil\nBo;Ng;Y;X;nil;nil;nil\n"

func TestResolve_FollowsDisplayOrder(t *testing.T) {
	s := New(loadTable(t, twoAuthors))
	s.List().Press(1)
	s.List().Press(1)
	s.List().DragTo(0)

	res, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	got := []string{res.Rows[0].Last, res.Rows[1].Last}
	if diff := cmp.Diff([]string{"Ng", "Lee"}, got); diff != "" {
		t.Errorf("Resolve() order mismatch (-want +got):\n%s", diff)
	}
	if res.Rows[0].Index != 1 {
		t.Errorf("Rows[0].Index = %d, want 1", res.Rows[0].Index)
	}
	if len(res.Ambiguous) != 0 {
		t.Errorf("Ambiguous = %v, want none", res.Ambiguous)
	}
}

func TestResolve_AmbiguousNames(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	table := "Ann;Lee;X;nil;nil;nil;nil\nBo;Ng;Y;nil;nil;nil;nil\nAnn;Lee;Z;nil;nil;nil;nil\n"
	s := New(loadTable(t, table), WithLogger(zap.New(core)))

	res, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if diff := cmp.Diff([]author.Key{{First: "Ann", Last: "Lee"}}, res.Ambiguous); diff != "" {
		t.Errorf("Ambiguous mismatch (-want +got):\n%s", diff)
	}
	// Each entry keeps its own row when it is one of the matches.
	if res.Rows[0].Affiliations[0] != "X" || res.Rows[2].Affiliations[0] != "Z" {
		t.Errorf("Resolve() rows = %+v, want X then Z for the two Ann Lee entries", res.Rows)
	}
	if logs.Len() != 1 {
		t.Errorf("logged %d warnings, want 1", logs.Len())
	}
}

func TestResolve_UnknownAuthor(t *testing.T) {
	authors := loadTable(t, twoAuthors)
	s := New(authors)
	s.list = order.New([]order.Entry{{Key: author.Key{First: "Cy", Last: "Adams"}}})

	if _, err := s.Resolve(); !errors.Is(err, ErrUnknownAuthor) {
		t.Errorf("Resolve() error = %v, want ErrUnknownAuthor", err)
	}
}

func TestResolve_AfterDelete(t *testing.T) {
	s := New(loadTable(t, twoAuthors))
	s.List().Press(0)
	s.List().DeleteSelected()

	res, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(res.Rows) != 1 || res.Rows[0].Last != "Ng" {
		t.Errorf("Resolve() = %+v, want only Ng", res.Rows)
	}
	if len(s.Authors()) != 2 {
		t.Error("deleting from the display order changed the canonical table")
	}
}

func TestExportAll(t *testing.T) {
	s := New(loadTable(t, twoAuthors))
	paths := testPaths(t)

	report, err := s.ExportAll(paths)
	if err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}

	if got, want := readFile(t, paths.Word), "Ann Lee1, Bo Ng2,1\n\n(1) X\n(2) Y\n"; got != want {
		t.Errorf("word file = %q, want %q", got, want)
	}
	if got, want := readFile(t, paths.List), "Ann Lee\nBo Ng\n"; got != want {
		t.Errorf("list file = %q, want %q", got, want)
	}
	if got, want := readFile(t, paths.Sorted), "Ann Lee\nBo Ng\n"; got != want {
		t.Errorf("sorted file = %q, want %q", got, want)
	}
	if report.Authors != 2 || report.Affiliations != 2 || len(report.Files) != 3 {
		t.Errorf("report = %+v", report)
	}
}

func TestExportAll_SortedIgnoresDisplayOrder(t *testing.T) {
	table := "Cy;Adams;A;nil;nil;nil;nil\nAnn;Lee;X;nil;nil;nil;nil\nBo;Ng;Y;nil;nil;nil;nil\n"
	s := New(loadTable(t, table))
	paths := testPaths(t)

	// Move Ng to the top.
	s.List().Press(2)
	s.List().Press(2)
	s.List().DragTo(0)

	if _, err := s.ExportAll(paths); err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}

	if got, want := readFile(t, paths.List), "Bo Ng\nCy Adams\nAnn Lee\n"; got != want {
		t.Errorf("list file = %q, want %q", got, want)
	}
	if got, want := readFile(t, paths.Sorted), "Cy Adams\nAnn Lee\nBo Ng\n"; got != want {
		t.Errorf("sorted file = %q, want %q", got, want)
	}

	entries := s.List().Entries()
	if entries[0].Key.Last != "Ng" {
		t.Error("export changed the display order")
	}
}

func TestExportAll_Workbook(t *testing.T) {
	s := New(loadTable(t, twoAuthors))
	paths := testPaths(t)
	paths.Workbook = filepath.Join(t.TempDir(), "lal.xlsx")

	report, err := s.ExportAll(paths)
	if err != nil {
		t.Fatalf("ExportAll() error = %v", err)
	}
	if len(report.Files) != 4 {
		t.Errorf("Files = %v, want 4 entries", report.Files)
	}
	if _, err := os.Stat(paths.Workbook); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
}

func TestExportAll_WriteFailure(t *testing.T) {
	s := New(loadTable(t, twoAuthors))
	paths := testPaths(t)
	paths.Word = filepath.Join(t.TempDir(), "missing-dir", "word.txt")

	if _, err := s.ExportAll(paths); err == nil {
		t.Error("ExportAll() succeeded writing into a missing directory")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	table := "Ann;Lee;X;nil;nil;nil;nil\nBo;Ng;Y;X;nil;nil;nil\nCy;Adams;Z;-;0;nan;nil\n"
	s := New(loadTable(t, table))
	paths := testPaths(t)

	s.List().Press(2)
	s.List().Press(2)
	s.List().DragTo(0)

	if _, err := s.Save(paths.Inout); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := storage.ReadAll(paths.Inout)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	res, err := s.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if diff := cmp.Diff(res.Authors(), reloaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	again := New(reloaded)
	var lasts []string
	for _, e := range again.List().Entries() {
		lasts = append(lasts, e.Key.Last)
	}
	if diff := cmp.Diff([]string{"Adams", "Lee", "Ng"}, lasts); diff != "" {
		t.Errorf("reloaded order mismatch (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	s := New(loadTable(t, twoAuthors))

	got, err := s.Render(export.ModeList)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "Ann Lee\nBo Ng\n" {
		t.Errorf("Render(list) = %q", got)
	}

	citation, err := s.Citation()
	if err != nil {
		t.Fatalf("Citation() error = %v", err)
	}
	if !strings.HasPrefix(citation, "Ann Lee1, Bo Ng2,1") {
		t.Errorf("Citation() = %q", citation)
	}
}

func TestWithSentinels(t *testing.T) {
	table := "Ann;Lee;none;X;nil;nil;nil\n"
	s := New(loadTable(t, table), WithSentinels(author.NewSentinels("none", "nil")))

	got, err := s.Citation()
	if err != nil {
		t.Fatalf("Citation() error = %v", err)
	}
	if got != "Ann Lee1\n\n(1) X\n" {
		t.Errorf("Citation() = %q", got)
	}
}
