package search

import "strings"

// State is the search engine: the lowercased query, an append-only list of
// match positions (in the projection being searched, not the raw buffer),
// a cursor into that list, and whether the source has been exhausted.
type State struct {
	query           string
	matchIndices    []int
	currentMatch    *int
	IsEndReached    bool
}

// NewState builds a State for query, lowercasing it once at submission time.
func NewState(query string) *State {
	return &State{query: strings.ToLower(query)}
}

// MatchesLen is the number of matches found so far.
func (s *State) MatchesLen() int {
	return len(s.matchIndices)
}

// CurrentMatchIndex reports the cursor into matchIndices, if a match is
// known.
func (s *State) CurrentMatchIndex() (int, bool) {
	if s.currentMatch == nil {
		return 0, false
	}
	return *s.currentMatch, true
}

// Start is called when the operator submits a query. It repeatedly advances
// through source until either source is exhausted or a match at or beyond
// selectedIndex is found, then picks the new selected index: the match
// itself if it lands past selectedIndex (falling back to whichever of it
// and its predecessor is numerically closer, predecessor winning ties), or
// the match position exactly when it equals selectedIndex.
func (s *State) Start(selectedIndex int, source Source) int {
	current := selectedIndex
	chosen := selectedIndex
	for {
		s.GoToNextSearchResult(source)
		idx, ok := s.CurrentMatchIndex()
		if !ok {
			break
		}
		matchPos := s.matchIndices[idx]
		if matchPos < current && !source.IsEndReached() {
			continue
		} else if matchPos > current {
			prevIdx := idx
			if prevIdx > 0 {
				prevIdx--
			}
			prevPos := s.matchIndices[prevIdx]
			if absDiff(prevPos, current) <= matchPos-current {
				chosen = prevPos
			} else {
				chosen = matchPos
			}
		} else {
			chosen = matchPos
		}
		break
	}
	return chosen
}

// GoToNextSearchResult advances to the next known match, pulling fresh
// matches from source via findNext when the cached list is exhausted.
func (s *State) GoToNextSearchResult(source Source) (int, bool) {
	if s.currentMatch != nil {
		next := *s.currentMatch + 1
		if next < len(s.matchIndices) {
			s.currentMatch = &next
			return s.matchIndices[next], true
		}
	}
	return s.findNext(source)
}

// GoToPrevSearchResult steps back one match, saturating at the first match
// rather than wrapping — staying put when already there, per the decided
// UX (see DESIGN.md).
func (s *State) GoToPrevSearchResult() (int, bool) {
	if s.currentMatch == nil {
		return 0, false
	}
	idx := *s.currentMatch
	if idx > 0 {
		idx--
	}
	s.currentMatch = &idx
	return s.matchIndices[idx], true
}

func (s *State) findNext(source Source) (int, bool) {
	if s.IsEndReached {
		return 0, false
	}

	startIndex := 0
	if s.currentMatch != nil {
		startIndex = s.matchIndices[*s.currentMatch] + 1
	}

	slice := source.Slice()
	index, found := findNextIndex(s.query, slice, startIndex)
	if !found {
		for {
			entry, ok := source.TakeNext()
			if !ok {
				break
			}
			if strings.Contains(entry.LowerCaseMessage, s.query) {
				index = source.Len() - 1
				found = true
				break
			}
		}
	}

	if !found {
		s.IsEndReached = true
		return 0, false
	}

	next := len(s.matchIndices)
	s.matchIndices = append(s.matchIndices, index)
	s.currentMatch = &next
	return index, true
}

func findNextIndex(query string, slice Slice, startIndex int) (int, bool) {
	for i := startIndex; i < slice.Len(); i++ {
		if strings.Contains(slice.At(i).LowerCaseMessage, query) {
			return i, true
		}
	}
	return 0, false
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
