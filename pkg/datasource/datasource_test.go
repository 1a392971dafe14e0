package datasource_test

import (
	"testing"
	"time"

	"github.com/basalt-tools/peek/pkg/datasource"
	"github.com/basalt-tools/peek/pkg/logentry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func channelOf(names ...string) <-chan *logentry.LogEntry {
	ch := make(chan *logentry.LogEntry, len(names))
	for _, n := range names {
		ch <- logentry.New(n, time.Now(), logentry.NewSource(n))
	}
	close(ch)
	return ch
}

func TestSelectNextDoesNotUnderflowOnEmptyBuffer(t *testing.T) {
	ds := datasource.New(channelOf())
	ds.LoadLogs(10)
	ds.SelectNext()
	assert.Equal(t, 0, ds.SelectedIndex)
}

func TestSelectNextSaturatesAtLastEntry(t *testing.T) {
	ds := datasource.New(channelOf("a", "b"))
	ds.LoadLogs(10)
	ds.SelectNext()
	ds.SelectNext()
	ds.SelectNext()
	assert.Equal(t, 1, ds.SelectedIndex)
}

func TestSelectPreviousSaturatesAtZero(t *testing.T) {
	ds := datasource.New(channelOf("a", "b"))
	ds.LoadLogs(10)
	ds.SelectPrevious()
	assert.Equal(t, 0, ds.SelectedIndex)
}

func TestSetSelectedSourcesFiltersThenRestoresPlain(t *testing.T) {
	ds := datasource.New(channelOf("a", "b", "a"))
	ds.LoadLogs(10)
	ds.PrepareForDraw(10)

	aHash := logentry.NewSource("a").Hash
	ds.SetSelectedSources(map[uint64]struct{}{aHash: {}})
	ds.PrepareForDraw(10)

	var names []string
	ds.IterateEntriesToDraw(func(row int, e *logentry.LogEntry) {
		names = append(names, e.Source.Name)
	})
	assert.Equal(t, []string{"a", "a"}, names)

	ds.SetSelectedSources(map[uint64]struct{}{})
	ds.PrepareForDraw(10)
	names = nil
	ds.IterateEntriesToDraw(func(row int, e *logentry.LogEntry) {
		names = append(names, e.Source.Name)
	})
	assert.Equal(t, []string{"a", "b", "a"}, names)
}

func TestStartSearchCollapsesFilteredToPlain(t *testing.T) {
	ds := datasource.New(channelOf("a needle", "b", "a needle again"))
	ds.LoadLogs(10)
	ds.PrepareForDraw(10)

	aHash := logentry.NewSource("a needle").Hash
	ds.SetSelectedSources(map[uint64]struct{}{aHash: {}})

	ds.StartSearch("needle")
	state := ds.SearchPaginationState()
	require.True(t, state.HasMatches)
	assert.Equal(t, 0, ds.SelectedIndex)
}

func TestGoToNextPageAndPrevPage(t *testing.T) {
	names := make([]string, 250)
	for i := range names {
		names[i] = "entry"
	}
	ds := datasource.New(channelOf(names...))
	ds.LoadLogs(150) // pulls the whole 250-entry backlog up front
	ds.PrepareForDraw(20)

	for i := 0; i < 20; i++ {
		ds.GoToNextPage()
	}
	assert.Equal(t, 230, ds.Offset)

	ds.GoToNextPage()
	assert.Equal(t, 230, ds.Offset, "further advance clamps at the final full page")

	ds.GoToPrevPage()
	assert.Equal(t, 210, ds.Offset)
}

func TestPaginationStateReportsSelectionPosition(t *testing.T) {
	ds := datasource.New(channelOf("a", "b", "c"))
	ds.LoadLogs(10)
	ds.SelectNext()

	state := ds.PaginationState()
	assert.Equal(t, 2, state.Current)
	require.True(t, state.Total.Valid)
	assert.Equal(t, 3, state.Total.Value)
}

func TestSearchPaginationStateEmptyWithNoActiveSearch(t *testing.T) {
	ds := datasource.New(channelOf("a", "b"))
	ds.LoadLogs(10)
	state := ds.SearchPaginationState()
	assert.False(t, state.HasMatches)
}

func TestIterateSourcesReflectsSelection(t *testing.T) {
	ds := datasource.New(channelOf("a", "b"))
	ds.LoadLogs(10)
	ds.PrepareForDraw(10)

	aHash := logentry.NewSource("a").Hash
	ds.SetSelectedSources(map[uint64]struct{}{aHash: {}})

	seen := map[string]bool{}
	ds.IterateSources(func(s logentry.Source, selected bool) {
		seen[s.Name] = selected
	})
	assert.True(t, seen["a"])
	assert.False(t, seen["b"])
}
