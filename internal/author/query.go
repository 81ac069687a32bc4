package author

import (
	"strings"
)

// Query represents a parsed author lookup used by the headless commands.
type Query struct {
	First string // First name (may be empty for last-name-only queries)
	Last  string // Last name (required)
}

// ParseQuery parses an author lookup string into a structured Query.
//
// Supported formats:
//   - "Goelzer"         → last="Goelzer" (single word = last name only)
//   - "Heiko Goelzer"   → first="Heiko", last="Goelzer" (space-separated = First Last)
//   - "Goelzer, Heiko"  → first="Heiko", last="Goelzer" (comma = Last, First)
//
// Names are trimmed but case is preserved (matching is case-insensitive).
func ParseQuery(input string) Query {
	input = strings.TrimSpace(input)
	if input == "" {
		return Query{}
	}

	// Check for comma format: "Last, First"
	if idx := strings.Index(input, ","); idx > 0 {
		last := strings.TrimSpace(input[:idx])
		first := strings.TrimSpace(input[idx+1:])
		return Query{First: first, Last: last}
	}

	parts := strings.Fields(input)
	if len(parts) == 1 {
		return Query{Last: parts[0]}
	}

	// Multiple words: last word is last name, rest is first name
	last := parts[len(parts)-1]
	first := strings.Join(parts[:len(parts)-1], " ")
	return Query{First: first, Last: last}
}

// Matches checks if the query matches a name pair.
//
// Matching rules:
//   - Last name: case-insensitive exact match (required)
//   - First name: case-insensitive prefix match (if query has first name)
func (q Query) Matches(k Key) bool {
	if q.Last == "" || !strings.EqualFold(q.Last, strings.TrimSpace(k.Last)) {
		return false
	}
	if q.First == "" {
		return true
	}
	return strings.HasPrefix(
		strings.ToLower(strings.TrimSpace(k.First)),
		strings.ToLower(q.First),
	)
}

// FindAll returns the positions of every key the query matches.
func (q Query) FindAll(keys []Key) []int {
	var out []int
	for i, k := range keys {
		if q.Matches(k) {
			out = append(out, i)
		}
	}
	return out
}
