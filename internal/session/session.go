// Package session owns the canonical author table loaded at startup and the
// display order the user edits, and turns the current order into output files.
package session

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/lal-tools/lal/internal/author"
	"github.com/lal-tools/lal/internal/order"
)

// ErrUnknownAuthor is returned when a display entry names an author that is
// not in the canonical table.
var ErrUnknownAuthor = errors.New("author not in canonical table")

// Session ties the read-only canonical table to its display order.
type Session struct {
	authors   []author.Author
	byKey     map[author.Key][]int
	list      *order.List
	sentinels author.Sentinels
	log       *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for save/export events and warnings.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSentinels sets the placeholders treated as "no affiliation".
func WithSentinels(sentinels author.Sentinels) Option {
	return func(s *Session) {
		if len(sentinels) > 0 {
			s.sentinels = sentinels
		}
	}
}

// New creates a session whose display order mirrors authors.
func New(authors []author.Author, opts ...Option) *Session {
	s := &Session{
		authors:   slices.Clone(authors),
		byKey:     make(map[author.Key][]int, len(authors)),
		list:      order.FromAuthors(authors),
		sentinels: author.NewSentinels(),
		log:       zap.NewNop(),
	}
	for i, a := range s.authors {
		s.byKey[a.Key()] = append(s.byKey[a.Key()], i)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the display order controller.
func (s *Session) List() *order.List {
	return s.list
}

// Authors returns a copy of the canonical table.
func (s *Session) Authors() []author.Author {
	return slices.Clone(s.authors)
}

// Sentinels returns the placeholder set in use.
func (s *Session) Sentinels() author.Sentinels {
	return s.sentinels
}

// Resolution is the display order mapped back onto canonical rows.
type Resolution struct {
	Rows []author.Row
	// Ambiguous lists name pairs shared by more than one canonical row.
	Ambiguous []author.Key
}

// Authors returns the resolved authors in display order.
func (r Resolution) Authors() []author.Author {
	out := make([]author.Author, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Author
	}
	return out
}

// Resolve maps every display entry to its canonical row by (last, first)
// name. When several canonical rows share the name pair the match is
// reported in Ambiguous; the row carrying the entry's own original index is
// used if it is among them, otherwise the first.
func (s *Session) Resolve() (Resolution, error) {
	return s.resolve(s.list.Entries())
}

func (s *Session) resolve(entries []order.Entry) (Resolution, error) {
	res := Resolution{Rows: make([]author.Row, 0, len(entries))}
	seen := make(map[author.Key]bool)

	for _, e := range entries {
		matches := s.byKey[e.Key]
		if len(matches) == 0 {
			return Resolution{}, fmt.Errorf("%w: %s", ErrUnknownAuthor, e.Key)
		}

		pick := matches[0]
		if len(matches) > 1 {
			if slices.Contains(matches, e.Index) {
				pick = e.Index
			}
			if !seen[e.Key] {
				seen[e.Key] = true
				res.Ambiguous = append(res.Ambiguous, e.Key)
				s.log.Warn("ambiguous author name",
					zap.String("name", e.Key.String()),
					zap.Ints("rows", matches),
					zap.Int("used", pick))
			}
		}

		res.Rows = append(res.Rows, author.Row{Author: s.authors[pick], Index: pick})
	}

	return res, nil
}
