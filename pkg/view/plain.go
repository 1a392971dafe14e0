// Package view implements the two draw-range projections over a shared
// streambuf.Buffer: Plain (identity) and Filtered (index-vector over a
// selected set of sources).
package view

import (
	"github.com/basalt-tools/peek/pkg/logentry"
	"github.com/basalt-tools/peek/pkg/search"
	"github.com/basalt-tools/peek/pkg/streambuf"
)

// Plain is the identity projection: every buffer position is visible.
type Plain struct {
	Buffer     *streambuf.Buffer
	start, end int
}

// NewPlain wraps buf with no filtering applied.
func NewPlain(buf *streambuf.Buffer) *Plain {
	return &Plain{Buffer: buf}
}

// PrepareLogsToDraw sets the draw range to [end-count, end) where
// end = min(buffer length, start+count).
func (p *Plain) PrepareLogsToDraw(start, count int) {
	end := min(p.Buffer.Len(), start+count)
	p.start = max(0, end-count)
	p.end = end
}

// IterateEntriesToDraw invokes f(row, entry) for each entry in the current
// draw range, row zero-based within the range.
func (p *Plain) IterateEntriesToDraw(f func(row int, entry *logentry.LogEntry)) {
	for row, entry := range p.Buffer.Inner()[p.start:p.end] {
		f(row, entry)
	}
}

// Entry returns the buffer entry at absolute position i.
func (p *Plain) Entry(i int) (*logentry.LogEntry, bool) {
	inner := p.Buffer.Inner()
	if i < 0 || i >= len(inner) {
		return nil, false
	}
	return inner[i], true
}

// BufferLen is the count of entries in the underlying buffer.
func (p *Plain) BufferLen() int {
	return p.Buffer.Len()
}

// DrawRangeStart is the current draw range's lower bound.
func (p *Plain) DrawRangeStart() int {
	return p.start
}

// The following satisfy search.Source directly against the underlying
// Buffer — a Plain search considers every entry.

func (p *Plain) IsEndReached() bool                   { return p.Buffer.IsEndReached() }
func (p *Plain) Len() int                             { return p.Buffer.Len() }
func (p *Plain) TakeNext() (*logentry.LogEntry, bool) { return p.Buffer.TakeNext() }
func (p *Plain) Slice() search.Slice                  { return p.Buffer.Slice() }
