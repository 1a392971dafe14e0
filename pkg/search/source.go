// Package search implements the substring search engine. It is generic over
// any Source — the Buffer itself (Plain view) or a Filtered projection — so
// the matching loop is written once and shared.
package search

import "github.com/basalt-tools/peek/pkg/logentry"

// Slice is a read-only view handed to the search engine so it can scan
// already-materialized entries without going through the (possibly
// blocking) TakeNext path. It is the idiomatic-Go stand-in for a tagged
// union of "plain slice" vs "slice plus an index vector": when Indices is
// nil the slice is scanned directly; otherwise only the named positions are
// considered, in order.
type Slice struct {
	Entries []*logentry.LogEntry
	Indices []int
}

// Len reports how many logical positions this slice exposes.
func (s Slice) Len() int {
	if s.Indices != nil {
		return len(s.Indices)
	}
	return len(s.Entries)
}

// At returns the entry at logical position i.
func (s Slice) At(i int) *logentry.LogEntry {
	if s.Indices != nil {
		return s.Entries[s.Indices[i]]
	}
	return s.Entries[i]
}

// Source is the capability contract the search engine needs from whatever
// it walks: tell me whether the producer is exhausted, how many positions
// are known so far, pull the next one (possibly blocking), and give me a
// cached slice to scan without pulling.
type Source interface {
	IsEndReached() bool
	Len() int
	TakeNext() (*logentry.LogEntry, bool)
	Slice() Slice
}
