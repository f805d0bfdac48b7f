package index

import (
	"palette/internal/fuzzy"
)

// Index holds the current item set and search text for one view and
// recomputes the filtered result list on each query change.
//
// Two sourcing modes exist. Static: a fixed item list supplied once,
// re-filtered on every keystroke. External: the item set is replaced by
// calling a search function per query; the call may be slow, so it runs
// off the interactive loop and its result is applied through a sequence
// number. A result tagged with anything but the latest sequence is
// stale (the user has typed since) and is discarded, so a slow response
// for an earlier query can never overwrite a newer one.
type Index[T any] struct {
	keyFn   func(T) string
	items   []T
	search  func(query string) []T
	query   string
	results []T
	seq     uint64
}

// NewStatic creates an index over a fixed item list. keyFn projects an
// item to the text the fuzzy matcher runs against.
func NewStatic[T any](items []T, keyFn func(T) string) *Index[T] {
	idx := &Index[T]{
		keyFn: keyFn,
		items: items,
	}
	idx.results = items
	return idx
}

// NewExternal creates an index whose item set is recomputed per query
// by search. The search function must degrade its own failures into a
// placeholder item list; it never returns an error. Results start empty
// until the mount-time Begin("")/Apply round trip completes.
func NewExternal[T any](search func(query string) []T, keyFn func(T) string) *Index[T] {
	return &Index[T]{
		keyFn:  keyFn,
		search: search,
	}
}

// External reports whether this index sources items per query.
func (idx *Index[T]) External() bool {
	return idx.search != nil
}

// Query returns the current search text.
func (idx *Index[T]) Query() string {
	return idx.query
}

// Results returns the current result list. It is never nil-undefined:
// before the first external response arrives it is simply empty.
func (idx *Index[T]) Results() []T {
	return idx.results
}

// SetQuery updates the query on a static index and synchronously
// re-filters. The filter is stable: result order is input order, not
// match quality. An empty query short-circuits to the full item list.
func (idx *Index[T]) SetQuery(query string) []T {
	idx.query = query
	if query == "" {
		idx.results = idx.items
		return idx.results
	}

	filtered := make([]T, 0, len(idx.items))
	for _, item := range idx.items {
		if fuzzy.Matches(idx.keyFn(item), query) {
			filtered = append(filtered, item)
		}
	}
	idx.results = filtered
	return idx.results
}

// Begin records a new query on an external index and returns the
// sequence number the eventual response must carry. The caller runs
// Search(query) off the interactive loop and feeds the outcome to
// Apply with this sequence.
func (idx *Index[T]) Begin(query string) uint64 {
	idx.query = query
	idx.seq++
	return idx.seq
}

// Search invokes the external search function for the given query.
// Intended to run off the interactive loop.
func (idx *Index[T]) Search(query string) []T {
	return idx.search(query)
}

// Apply installs an external response. It reports whether the response
// was current; stale responses are dropped without touching results.
func (idx *Index[T]) Apply(seq uint64, items []T) bool {
	if seq != idx.seq {
		return false
	}
	if items == nil {
		items = []T{}
	}
	idx.results = items
	return true
}
