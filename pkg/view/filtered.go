package view

import (
	"github.com/basalt-tools/peek/pkg/logentry"
	"github.com/basalt-tools/peek/pkg/search"
	"github.com/basalt-tools/peek/pkg/streambuf"
)

// Filtered holds an append-only index vector of buffer positions whose
// source belongs to SelectedSources, plus a draw-range over that vector.
type Filtered struct {
	Buffer          *streambuf.Buffer
	SelectedSources map[uint64]struct{}

	indices         []int
	start, end      int
	lastBufferIndex int
	isEndReached    bool
}

// NewFiltered wraps buf, scanning only entries whose source hash is in
// selectedSources. lastBufferIndex starts at -1 so the first scan considers
// buffer position 0 (see DESIGN.md open-question decision on the
// last_buffer_index off-by-one).
func NewFiltered(buf *streambuf.Buffer, selectedSources map[uint64]struct{}) *Filtered {
	return &Filtered{
		Buffer:          buf,
		SelectedSources: selectedSources,
		lastBufferIndex: -1,
	}
}

// PrepareLogsToDraw clamps start to the known index count. If already
// end-reached or more than start+count indices are already known, it sets
// the draw range to [end-count, end) with end = min(len(indices),
// start+count); otherwise it pulls further matches from the underlying
// buffer until start+count matches are known or the stream ends, then sets
// the draw range to the final count entries of indices.
func (f *Filtered) PrepareLogsToDraw(start, count int) {
	start = min(start, len(f.indices))
	if f.isEndReached || start+count < len(f.indices) {
		end := min(len(f.indices), start+count)
		f.start = max(0, end-count)
		f.end = end
		return
	}

	found := len(f.indices) - start
	for found < count {
		if _, ok := f.TakeNext(); !ok {
			break
		}
		found++
	}

	ln := len(f.indices)
	f.start = max(0, ln-count)
	f.end = ln
}

// IterateEntriesToDraw invokes f(row, entry) for each entry in the current
// draw range.
func (f *Filtered) IterateEntriesToDraw(fn func(row int, entry *logentry.LogEntry)) {
	inner := f.Buffer.Inner()
	for row, idx := range f.indices[f.start:f.end] {
		fn(row, inner[idx])
	}
}

// Entry returns the entry at the i'th filtered position.
func (f *Filtered) Entry(i int) (*logentry.LogEntry, bool) {
	if i < 0 || i >= len(f.indices) {
		return nil, false
	}
	idx := f.indices[i]
	inner := f.Buffer.Inner()
	if idx >= len(inner) {
		return nil, false
	}
	return inner[idx], true
}

// BufferLen is the count of entries that have passed the filter so far.
func (f *Filtered) BufferLen() int {
	return len(f.indices)
}

// DrawRangeStart is the current draw range's lower bound.
func (f *Filtered) DrawRangeStart() int {
	return f.start
}

func (f *Filtered) selects(source logentry.Source) bool {
	_, ok := f.SelectedSources[source.Hash]
	return ok
}

// IsEndReached, Len, TakeNext, and Slice satisfy search.Source.

func (f *Filtered) IsEndReached() bool { return f.isEndReached }
func (f *Filtered) Len() int           { return len(f.indices) }

// TakeNext scans the already-buffered portion first, then pulls fresh
// entries from the underlying Buffer (blocking) until a match is found or
// the stream ends.
func (f *Filtered) TakeNext() (*logentry.LogEntry, bool) {
	inner := f.Buffer.Inner()
	for idx := f.lastBufferIndex + 1; idx < len(inner); idx++ {
		f.lastBufferIndex = idx
		if f.selects(inner[idx].Source) {
			f.indices = append(f.indices, idx)
			return inner[idx], true
		}
	}

	if f.Buffer.IsEndReached() {
		f.isEndReached = true
		return nil, false
	}

	for {
		idx := f.Buffer.Len()
		entry, ok := f.Buffer.TakeNext()
		if !ok {
			f.isEndReached = true
			return nil, false
		}
		f.lastBufferIndex = idx
		if f.selects(entry.Source) {
			f.indices = append(f.indices, idx)
			return entry, true
		}
	}
}

func (f *Filtered) Slice() search.Slice {
	return search.Slice{Entries: f.Buffer.Inner(), Indices: f.indices}
}
