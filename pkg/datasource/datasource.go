// Package datasource orchestrates the parser's channel, the buffer, the
// active view projection (Plain or Filtered), and the search engine into
// the single object the TUI model drives: selection, pagination, source
// filtering, and search are all entry points here.
package datasource

import (
	"github.com/basalt-tools/peek/pkg/logentry"
	"github.com/basalt-tools/peek/pkg/search"
	"github.com/basalt-tools/peek/pkg/streambuf"
	"github.com/basalt-tools/peek/pkg/ty"
	"github.com/basalt-tools/peek/pkg/view"
)

// projection is the shared contract both view.Plain and view.Filtered
// satisfy — the Go stand-in for the Rust EntrySource enum.
type projection interface {
	PrepareLogsToDraw(start, count int)
	IterateEntriesToDraw(f func(row int, entry *logentry.LogEntry))
	Entry(i int) (*logentry.LogEntry, bool)
	BufferLen() int
	DrawRangeStart() int
	search.Source
}

// PaginationState describes where the selected entry sits among the
// currently visible projection's entries.
type PaginationState struct {
	Current int
	Total   ty.Opt[int]
}

// SearchPaginationState describes where the search cursor sits among
// matches found so far. HasMatches is false when no search is active or no
// match has ever been found; Total is set only once the source backing the
// search is exhausted (a running count wouldn't mean much to the operator).
type SearchPaginationState struct {
	HasMatches bool
	Current    int
	Total      ty.Opt[int]
}

// DataSource is the single stateful object the TUI model drives.
type DataSource struct {
	Offset        int
	SelectedIndex int

	lastCount  int
	allSources map[uint64]logentry.Source

	proj        projection
	searchState *search.State
}

// New wires a DataSource to the parser's entry channel, starting in the
// unfiltered (Plain) projection.
func New(entries <-chan *logentry.LogEntry) *DataSource {
	return &DataSource{
		allSources: map[uint64]logentry.Source{},
		proj:       view.NewPlain(streambuf.New(entries)),
	}
}

// LoadLogs eagerly pulls entries so at least two screens' worth (relative to
// the current offset) are materialized, recording every source seen along
// the way for the filter dialog.
func (d *DataSource) LoadLogs(height int) {
	want := (d.Offset + height*2) - d.proj.BufferLen()
	for want > 0 {
		entry, ok := d.proj.TakeNext()
		if !ok {
			return
		}
		d.recordSource(entry.Source)
		want--
	}
}

func (d *DataSource) recordSource(s logentry.Source) {
	if _, ok := d.allSources[s.Hash]; !ok {
		d.allSources[s.Hash] = s
	}
}

// PrepareForDraw keeps the selected index within [offset, offset+count) by
// sliding the offset, then asks the active projection to materialize that
// range.
func (d *DataSource) PrepareForDraw(count int) {
	d.lastCount = count
	if d.SelectedIndex < d.Offset {
		d.Offset = d.SelectedIndex
	} else if d.SelectedIndex >= d.Offset+count {
		d.Offset += d.SelectedIndex - d.Offset - count + 1
	}
	d.proj.PrepareLogsToDraw(d.Offset, count)
}

// IterateEntriesToDraw invokes f(row, entry) for the last-prepared draw
// range.
func (d *DataSource) IterateEntriesToDraw(f func(row int, entry *logentry.LogEntry)) {
	d.proj.IterateEntriesToDraw(f)
}

// SelectNext moves the selection one entry forward, clamping to the last
// known entry (or 0 on an empty projection) rather than underflowing.
func (d *DataSource) SelectNext() {
	bufferLen := d.proj.BufferLen()
	if bufferLen == 0 {
		d.SelectedIndex = 0
		return
	}
	next := d.SelectedIndex + 1
	if next > bufferLen-1 {
		next = bufferLen - 1
	}
	d.SelectedIndex = next
}

// SelectPrevious moves the selection one entry back, saturating at 0.
func (d *DataSource) SelectPrevious() {
	if d.SelectedIndex > 0 {
		d.SelectedIndex--
	}
}

// GoToNextPage advances the draw window by lastCount entries and moves the
// selection to the resulting range start; it has no effect beyond the end
// of the projection.
func (d *DataSource) GoToNextPage() {
	d.proj.PrepareLogsToDraw(d.Offset+d.lastCount, d.lastCount)
	d.Offset = d.proj.DrawRangeStart()
	d.SelectedIndex = d.Offset
}

// GoToPrevPage steps the draw window back by lastCount entries, clamping at
// the start.
func (d *DataSource) GoToPrevPage() {
	if d.Offset >= d.lastCount {
		d.Offset -= d.lastCount
	} else {
		d.Offset = 0
	}
	d.SelectedIndex = d.Offset
}

// SetSelectedSources switches the active projection: Plain when sources is
// empty or covers every source seen so far, Filtered otherwise. Switching
// resets the cursor and drops any active search, since match positions are
// relative to the projection that found them.
func (d *DataSource) SetSelectedSources(sources map[uint64]struct{}) {
	d.Offset = 0
	d.SelectedIndex = 0
	d.searchState = nil

	isEverySource := len(sources) == 0 || len(sources) == len(d.allSources)

	switch proj := d.proj.(type) {
	case *view.Plain:
		if !isEverySource {
			d.proj = view.NewFiltered(proj.Buffer, sources)
		}
	case *view.Filtered:
		switch {
		case isEverySource:
			d.proj = view.NewPlain(proj.Buffer)
		case !sameSourceSet(proj.SelectedSources, sources):
			d.proj = view.NewFiltered(proj.Buffer, sources)
		}
	}

	if d.lastCount > 0 {
		d.PrepareForDraw(d.lastCount)
	}
}

func sameSourceSet(a, b map[uint64]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// StartSearch submits a query. A Filtered projection is first collapsed
// back to Plain — search always runs over every entry, not just the
// sources currently selected for filtering.
func (d *DataSource) StartSearch(query string) {
	if filtered, ok := d.proj.(*view.Filtered); ok {
		d.proj = view.NewPlain(filtered.Buffer)
	}
	state := search.NewState(query)
	d.SelectedIndex = state.Start(d.SelectedIndex, d.proj)
	d.searchState = state
}

// StopSearch clears the active search, leaving the current selection as-is.
func (d *DataSource) StopSearch() {
	d.searchState = nil
}

// GoToNextSearchResult moves the selection to the next match, if any.
func (d *DataSource) GoToNextSearchResult() {
	if d.searchState == nil {
		return
	}
	if idx, ok := d.searchState.GoToNextSearchResult(d.proj); ok {
		d.SelectedIndex = idx
	}
}

// GoToPrevSearchResult moves the selection to the previous match, staying
// put at the first one.
func (d *DataSource) GoToPrevSearchResult() {
	if d.searchState == nil {
		return
	}
	if idx, ok := d.searchState.GoToPrevSearchResult(); ok {
		d.SelectedIndex = idx
	}
}

// ActiveMessage is the entry currently under the selection cursor.
func (d *DataSource) ActiveMessage() (*logentry.LogEntry, bool) {
	return d.proj.Entry(d.SelectedIndex)
}

// IterateSources invokes f(source, selected) for every source seen so far.
// selected is always true while the Plain projection is active (nothing is
// filtered out); under Filtered it reflects SelectedSources.
func (d *DataSource) IterateSources(f func(source logentry.Source, selected bool)) {
	filtered, isFiltered := d.proj.(*view.Filtered)
	for _, s := range d.allSources {
		selected := true
		if isFiltered {
			_, selected = filtered.SelectedSources[s.Hash]
		}
		f(s, selected)
	}
}

// PaginationState reports the selection's position among the active
// projection's entries (1-based for display).
func (d *DataSource) PaginationState() PaginationState {
	return PaginationState{
		Current: d.SelectedIndex + 1,
		Total:   ty.OptWrap(d.proj.BufferLen()),
	}
}

// SearchPaginationState reports the search cursor's position among matches
// found so far.
func (d *DataSource) SearchPaginationState() SearchPaginationState {
	if d.searchState == nil {
		return SearchPaginationState{}
	}
	idx, ok := d.searchState.CurrentMatchIndex()
	if !ok {
		return SearchPaginationState{}
	}
	state := SearchPaginationState{HasMatches: true, Current: idx + 1}
	if d.searchState.IsEndReached {
		state.Total = ty.OptWrap(d.searchState.MatchesLen())
	}
	return state
}
