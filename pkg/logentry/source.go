// Package logentry holds the record types produced by the parser and
// consumed by every downstream projection, search, and drawing layer.
package logentry

import "github.com/cespare/xxhash/v2"

// Source identifies the origin a LogEntry was attributed to (e.g. the
// bracketed name in a raw-format header). Equality is by Hash, not Name, so
// two Sources built from the same name are interchangeable for filtering.
type Source struct {
	Name string
	Hash uint64
}

// NewSource builds a Source, precomputing its hash once.
func NewSource(name string) Source {
	return Source{
		Name: name,
		Hash: xxhash.Sum64String(name),
	}
}
