// Package author defines the author rows of a long author list and the
// helpers used to match and label them.
package author

import (
	"slices"
	"strconv"
	"strings"
)

// MaxAffiliations is the number of affiliation slots per author row.
const MaxAffiliations = 5

// Author is one row of the author table.
type Author struct {
	First        string                  `json:"first"` // First/given name(s)
	Last         string                  `json:"last"`  // Last/family name
	Affiliations [MaxAffiliations]string `json:"affiliations"`
}

// Key identifies an author by name pair.
type Key struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Key returns the name pair of the author.
func (a Author) Key() Key {
	return Key{First: a.First, Last: a.Last}
}

// FullName returns "First Last" with both parts trimmed.
func (a Author) FullName() string {
	first := strings.TrimSpace(a.First)
	last := strings.TrimSpace(a.Last)
	if first == "" {
		return last
	}
	return first + " " + last
}

// String formats the key as "Last, First".
func (k Key) String() string {
	if k.First == "" {
		return k.Last
	}
	return k.Last + ", " + k.First
}

// DisplayText returns the list label for an author at its original row index.
// The label is "Last,First,index" and doubles as the sort key.
func DisplayText(k Key, index int) string {
	return k.Last + "," + k.First + "," + strconv.Itoa(index)
}

// Sentinels is the set of placeholder strings meaning "no affiliation".
type Sentinels map[string]struct{}

// DefaultSentinels are the placeholders accepted in input files.
var DefaultSentinels = []string{"nil", "nan", "0", "-"}

// NewSentinels builds a sentinel set. With no values it uses DefaultSentinels.
func NewSentinels(values ...string) Sentinels {
	if len(values) == 0 {
		values = DefaultSentinels
	}
	s := make(Sentinels, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// IsNone reports whether an affiliation slot holds no affiliation.
// Matching is exact and case-sensitive; a blank slot is also empty.
func (s Sentinels) IsNone(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	_, ok := s[value]
	return ok
}

// Values returns the sentinel strings in sorted order.
func (s Sentinels) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// CompareText orders display labels case-insensitively.
func CompareText(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// Row is an author together with its original row position in the input.
type Row struct {
	Author
	Index int
}

// Label returns the display text of the row.
func (r Row) Label() string {
	return DisplayText(r.Key(), r.Index)
}
