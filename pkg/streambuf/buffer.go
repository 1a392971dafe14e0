// Package streambuf holds the append-only entry buffer that sits between
// the parser's channel and every view projection.
package streambuf

import (
	"github.com/basalt-tools/peek/pkg/logentry"
	"github.com/basalt-tools/peek/pkg/search"
)

// Buffer is the consumer end of the parser's bounded channel plus the
// append-only vector of everything received so far. Appended entries are
// never removed, reordered, or mutated; indices are stable for the life of
// the process.
type Buffer struct {
	entries  []*logentry.LogEntry
	receiver <-chan *logentry.LogEntry

	peeked   *logentry.LogEntry
	havePeek bool
	closed   bool
}

// New wraps receiver as a Buffer's sole source of entries.
func New(receiver <-chan *logentry.LogEntry) *Buffer {
	return &Buffer{receiver: receiver}
}

// Placeholder returns a Buffer with no live channel that is already at
// end-of-stream and holds no entries.
func Placeholder() *Buffer {
	return &Buffer{closed: true}
}

// IsEndReached is true iff the producer has closed the channel and nothing
// further is pending.
func (b *Buffer) IsEndReached() bool {
	if b.closed {
		return true
	}
	if b.havePeek {
		return false
	}
	if b.receiver == nil {
		return true
	}
	select {
	case entry, ok := <-b.receiver:
		if !ok {
			b.closed = true
			return true
		}
		b.peeked = entry
		b.havePeek = true
		return false
	default:
		return false
	}
}

// Len is the count of entries already received.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// TakeNext receives one entry, appends it, and returns it; it returns
// (nil, false) once the producer has closed with nothing left. It blocks
// when the channel is open but currently empty.
func (b *Buffer) TakeNext() (*logentry.LogEntry, bool) {
	if b.havePeek {
		entry := b.peeked
		b.peeked = nil
		b.havePeek = false
		b.entries = append(b.entries, entry)
		return entry, true
	}
	if b.closed || b.receiver == nil {
		return nil, false
	}
	entry, ok := <-b.receiver
	if !ok {
		b.closed = true
		return nil, false
	}
	b.entries = append(b.entries, entry)
	return entry, true
}

// Inner is a stable read-only view of every entry received so far.
func (b *Buffer) Inner() []*logentry.LogEntry {
	return b.entries
}

// Slice satisfies search.Source for the Plain (unfiltered) case: the whole
// buffer, in order.
func (b *Buffer) Slice() search.Slice {
	return search.Slice{Entries: b.entries}
}
