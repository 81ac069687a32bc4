// Package affiliation numbers the unique affiliations of an ordered author list.
package affiliation

import (
	"github.com/lal-tools/lal/internal/author"
)

// Registry is the numbered set of unique affiliations for one export.
type Registry struct {
	// Names holds unique affiliations in first-seen order; Names[i] has number i+1.
	Names []string
	// Indices holds, per author, the 1-based numbers of its affiliations in slot order.
	Indices [][]int

	lookup map[string]int
}

// Build scans authors top to bottom and slots left to right, numbering each
// affiliation the first time it is seen. Slots holding a sentinel are skipped.
func Build(authors []author.Author, sentinels author.Sentinels) *Registry {
	r := &Registry{
		Indices: make([][]int, len(authors)),
		lookup:  make(map[string]int),
	}

	for i, a := range authors {
		ids := []int{}
		for _, aff := range a.Affiliations {
			if sentinels.IsNone(aff) {
				continue
			}
			ids = append(ids, r.add(aff))
		}
		r.Indices[i] = ids
	}

	return r
}

func (r *Registry) add(name string) int {
	if n, ok := r.lookup[name]; ok {
		return n
	}
	r.Names = append(r.Names, name)
	n := len(r.Names)
	r.lookup[name] = n
	return n
}

// Index returns the number assigned to an affiliation.
func (r *Registry) Index(name string) (int, bool) {
	n, ok := r.lookup[name]
	return n, ok
}

// Len returns the number of unique affiliations.
func (r *Registry) Len() int {
	return len(r.Names)
}
