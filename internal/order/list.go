// Package order holds the user-visible arrangement of the author list and the
// selection, drag, delete and sort operations performed on it.
//
// The list knows nothing about rendering. A UI adapter maps pointer and key
// events onto Press, Toggle, Extend, DragTo and Release and redraws from
// Entries and Selected.
package order

import (
	"slices"

	"github.com/lal-tools/lal/internal/author"
)

// Entry is a lightweight reference to a canonical author row.
type Entry struct {
	Key   author.Key `json:"key"`
	Index int        `json:"index"` // original row position
}

// Label returns the display text of the entry, "Last,First,index".
func (e Entry) Label() string {
	return author.DisplayText(e.Key, e.Index)
}

// List is the display order plus its selection state.
type List struct {
	entries  []Entry
	selected []bool

	anchor   int  // last plainly clicked or toggled row, -1 if none
	armed    bool // press landed inside the selection; motion moves the block
	toggling bool // selection is being built by toggling; motion never moves
	locked   bool // shifting suspended during the auto-scroll cooldown
}

// New creates a list in the given order with nothing selected.
func New(entries []Entry) *List {
	return &List{
		entries:  slices.Clone(entries),
		selected: make([]bool, len(entries)),
		anchor:   -1,
	}
}

// FromAuthors creates a list mirroring authors in input order.
func FromAuthors(authors []author.Author) *List {
	entries := make([]Entry, len(authors))
	for i, a := range authors {
		entries[i] = Entry{Key: a.Key(), Index: i}
	}
	return New(entries)
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the current order.
func (l *List) Entries() []Entry {
	return slices.Clone(l.entries)
}

// At returns the entry at position i.
func (l *List) At(i int) Entry {
	return l.entries[i]
}

// Selected reports whether position i is selected.
func (l *List) Selected(i int) bool {
	return l.valid(i) && l.selected[i]
}

// Selection returns the selected positions in ascending order.
func (l *List) Selection() []int {
	var out []int
	for i, s := range l.selected {
		if s {
			out = append(out, i)
		}
	}
	return out
}

// Span returns the smallest and largest selected positions.
// ok is false when nothing is selected.
func (l *List) Span() (lo, hi int, ok bool) {
	lo, hi = -1, -1
	for i, s := range l.selected {
		if !s {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i
	}
	return lo, hi, lo >= 0
}

// Anchor returns the current anchor position, or -1.
func (l *List) Anchor() int {
	return l.anchor
}

// Dragging reports whether pointer motion will move the selection.
func (l *List) Dragging() bool {
	return l.armed && !l.toggling
}

// Toggling reports whether the list is in toggle-selection mode.
func (l *List) Toggling() bool {
	return l.toggling
}

// Clear drops the selection.
func (l *List) Clear() {
	clear(l.selected)
	l.anchor = -1
	l.armed = false
}

// Press handles a plain primary click on position i. Clicking inside the
// current selection keeps it and arms a drag of the whole selection;
// clicking elsewhere selects only i and makes it the anchor.
func (l *List) Press(i int) {
	l.toggling = false
	if !l.valid(i) {
		return
	}
	if l.selected[i] {
		l.armed = true
		return
	}
	clear(l.selected)
	l.selected[i] = true
	l.anchor = i
	l.armed = false
}

// Toggle flips the selection of position i without touching the others.
// Until the next Press, pointer motion does not move anything.
func (l *List) Toggle(i int) {
	l.toggling = true
	l.armed = false
	if !l.valid(i) {
		return
	}
	l.selected[i] = !l.selected[i]
	l.anchor = i
}

// Extend selects exactly the contiguous range between the anchor and i.
func (l *List) Extend(i int) {
	if !l.valid(i) {
		return
	}
	if !l.valid(l.anchor) {
		l.anchor = i
	}
	l.SelectRange(l.anchor, i)
}

// SelectRange selects exactly positions lo..hi (inclusive, in either order).
func (l *List) SelectRange(lo, hi int) {
	if l.Len() == 0 {
		return
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	lo = max(lo, 0)
	hi = min(hi, l.Len()-1)
	clear(l.selected)
	for i := lo; i <= hi; i++ {
		l.selected[i] = true
	}
	if l.anchor < 0 || l.anchor < lo || l.anchor > hi {
		l.anchor = lo
	}
}

// DragTo handles pointer motion over position target while the primary
// button is held. With an armed drag the selection moves as one block so
// that its leading edge lands on target; otherwise the selection is
// extended from the anchor. It reports whether the order changed.
func (l *List) DragTo(target int) bool {
	if l.toggling || l.Len() == 0 {
		return false
	}
	if !l.armed {
		l.Extend(target)
		return false
	}
	if l.locked {
		return false
	}
	return l.moveBlock(target)
}

// Release ends the current pointer gesture.
func (l *List) Release() {
	l.armed = false
}

// MoveSelection moves the selection block delta rows (negative is up).
func (l *List) MoveSelection(delta int) bool {
	lo, hi, ok := l.Span()
	if !ok || delta == 0 {
		return false
	}
	if delta < 0 {
		return l.moveBlock(lo + delta)
	}
	return l.moveBlock(hi + delta)
}

// moveBlock gathers the selection into one block, keeping its internal
// order, and places it so its edge nearest target lands on target.
// Unselected rows from inside the old span end up on the side facing away
// from the move.
func (l *List) moveBlock(target int) bool {
	lo, hi, ok := l.Span()
	if !ok {
		return false
	}
	target = max(0, min(target, l.Len()-1))
	if target >= lo && target <= hi {
		return false
	}

	var block, rest []Entry
	for i, e := range l.entries {
		if l.selected[i] {
			block = append(block, e)
		} else {
			rest = append(rest, e)
		}
	}

	start := target
	if target > hi {
		start = target + 1 - len(block)
	}

	next := make([]Entry, 0, len(l.entries))
	next = append(next, rest[:start]...)
	next = append(next, block...)
	next = append(next, rest[start:]...)
	l.entries = next

	clear(l.selected)
	for i := start; i < start+len(block); i++ {
		l.selected[i] = true
	}
	l.anchor = start
	return true
}

// DeleteSelected removes every position from the first to the last selected
// one, including unselected positions in between. It returns the number of
// entries removed.
func (l *List) DeleteSelected() int {
	lo, hi, ok := l.Span()
	if !ok {
		return 0
	}
	l.entries = slices.Delete(l.entries, lo, hi+1)
	l.selected = slices.Delete(l.selected, lo, hi+1)
	l.Clear()
	return hi - lo + 1
}

// SortAll orders every entry by display text, ignoring case.
func (l *List) SortAll() {
	sortEntries(l.entries)
	l.Clear()
}

// SortSelection orders the positions from the first to the last selected
// one by display text, ignoring case. Entries outside that span stay put.
func (l *List) SortSelection() {
	lo, hi, ok := l.Span()
	if !ok {
		return
	}
	sortEntries(l.entries[lo : hi+1])
	l.Clear()
}

// Lock suspends block moves until Unlock.
func (l *List) Lock() {
	l.locked = true
}

// Unlock re-enables block moves.
func (l *List) Unlock() {
	l.locked = false
}

// Locked reports whether block moves are suspended.
func (l *List) Locked() bool {
	return l.locked
}

func (l *List) valid(i int) bool {
	return i >= 0 && i < len(l.entries)
}

func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return author.CompareText(a.Label(), b.Label())
	})
}
