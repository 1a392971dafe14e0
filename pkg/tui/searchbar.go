// SPDX-License-Identifier: GPL-3.0-only
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchBar is a single-line substring query input bound to
// datasource.DataSource's search entry points.
type SearchBar struct {
	Input  textinput.Model
	Active bool
}

// NewSearchBar builds an inactive search bar.
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = 256
	ti.Prompt = "/"
	return SearchBar{Input: ti}
}

// Open activates the input, ready to receive the query.
func (s *SearchBar) Open() {
	s.Active = true
	s.Input.Reset()
	s.Input.Focus()
}

// Close deactivates the input without clearing its last value.
func (s *SearchBar) Close() {
	s.Active = false
	s.Input.Blur()
}

// Update forwards msg to the embedded textinput while the bar is active.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if !s.Active {
		return s, nil
	}
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return s, cmd
}

// Query returns the text currently entered.
func (s SearchBar) Query() string {
	return s.Input.Value()
}

func (m Model) renderSearchBar() string {
	if m.SearchBar.Active {
		return m.Styles.SearchInputActive.Width(m.Width - 2).Render(m.SearchBar.Input.View())
	}

	pagination := m.DataSource.SearchPaginationState()
	if !pagination.HasMatches {
		return ""
	}

	label := fmt.Sprintf("match %d", pagination.Current)
	if pagination.Total.Valid {
		label = fmt.Sprintf("match %d/%d", pagination.Current, pagination.Total.Value)
	}
	return m.Styles.SearchPrompt.Render(label)
}
