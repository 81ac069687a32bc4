package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lal-tools/lal/internal/author"
	"github.com/lal-tools/lal/internal/order"
)

// parseSpan parses a 1-based position "n" or range "a:b" into 0-based
// bounds. ok is false when s is not numeric, so it can be tried as a name.
func parseSpan(s string) (lo, hi int, ok bool, err error) {
	a, b, hasRange := strings.Cut(strings.TrimSpace(s), ":")

	lo, errA := strconv.Atoi(strings.TrimSpace(a))
	if !hasRange {
		if errA != nil {
			return 0, 0, false, nil
		}
		return lo - 1, lo - 1, true, nil
	}

	hi, errB := strconv.Atoi(strings.TrimSpace(b))
	if errA != nil || errB != nil {
		return 0, 0, true, fmt.Errorf("invalid range %q: want start:end", s)
	}
	if lo > hi {
		return 0, 0, true, fmt.Errorf("invalid range %q: start after end", s)
	}
	return lo - 1, hi - 1, true, nil
}

// resolveSelector returns the 0-based positions named by a selector: a
// position, a range, or an author name ("Last", "First Last", "Last, First").
func resolveSelector(sel string, entries []order.Entry) ([]int, error) {
	lo, hi, ok, err := parseSpan(sel)
	if err != nil {
		return nil, err
	}
	if ok {
		if lo < 0 || hi >= len(entries) {
			return nil, fmt.Errorf("position %q out of range 1:%d", sel, len(entries))
		}
		out := make([]int, 0, hi-lo+1)
		for i := lo; i <= hi; i++ {
			out = append(out, i)
		}
		return out, nil
	}

	keys := make([]author.Key, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	matches := author.ParseQuery(sel).FindAll(keys)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no author matches %q", sel)
	}
	return matches, nil
}

// resolveTarget returns the single 0-based position named by sel.
func resolveTarget(sel string, entries []order.Entry) (int, error) {
	positions, err := resolveSelector(sel, entries)
	if err != nil {
		return 0, err
	}
	if len(positions) != 1 {
		return 0, fmt.Errorf("%q names %d positions, want exactly one", sel, len(positions))
	}
	return positions[0], nil
}

// applySelection replaces the list's selection with every position named by
// selectors and returns the positions in ascending order.
func applySelection(l *order.List, selectors []string) ([]int, error) {
	if len(selectors) == 0 {
		return nil, fmt.Errorf("no selection: use --select")
	}

	entries := l.Entries()
	var positions []int
	for _, sel := range selectors {
		found, err := resolveSelector(sel, entries)
		if err != nil {
			return nil, err
		}
		positions = append(positions, found...)
	}
	slices.Sort(positions)
	positions = slices.Compact(positions)

	l.Clear()
	for _, p := range positions {
		l.Toggle(p)
	}
	return positions, nil
}
