// SPDX-License-Identifier: GPL-3.0-only
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/basalt-tools/peek/pkg/datasource"
)

// StatusBarStyles holds the lipgloss styles the status bar renders with.
type StatusBarStyles struct {
	Base     lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Follow   lipgloss.Style
	NoFollow lipgloss.Style
}

// DefaultStatusBarStyles returns the status bar's default styling.
func DefaultStatusBarStyles() StatusBarStyles {
	return StatusBarStyles{
		Base:     lipgloss.NewStyle().Background(ColorBg).Foreground(ColorTextMuted),
		Label:    lipgloss.NewStyle().Foreground(ColorMuted),
		Value:    lipgloss.NewStyle().Foreground(ColorText),
		Follow:   lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		NoFollow: lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// StatusBar renders entry count, cursor position, follow mode, and the
// active source filter as a single line beneath the log view.
type StatusBar struct {
	Width  int
	Styles StatusBarStyles

	EntryCount  int
	Position    datasource.PaginationState
	FollowMode  bool
	FilterCount int
	SourceTotal int
}

// NewStatusBar returns an empty status bar with default styling.
func NewStatusBar() StatusBar {
	return StatusBar{Styles: DefaultStatusBarStyles()}
}

// UpdateFromDataSource refreshes the bar's fields from the current
// DataSource and source-filter state.
func (s *StatusBar) UpdateFromDataSource(ds *datasource.DataSource, followMode bool, filterCount, sourceTotal int) {
	pagination := ds.PaginationState()
	s.Position = pagination
	if total, ok := pagination.Total.Value, pagination.Total.Valid; ok {
		s.EntryCount = total
	}
	s.FollowMode = followMode
	s.FilterCount = filterCount
	s.SourceTotal = sourceTotal
}

// View renders the status bar to a single line of width s.Width.
func (s StatusBar) View() string {
	position := fmt.Sprintf("%d/%d", s.Position.Current, s.EntryCount)

	follow := s.Styles.NoFollow.Render("follow off")
	if s.FollowMode {
		follow = s.Styles.Follow.Render("follow on")
	}

	sources := s.Styles.Value.Render(fmt.Sprintf("sources %d/%d", s.FilterCount, s.SourceTotal))
	if s.FilterCount == 0 || s.FilterCount == s.SourceTotal {
		sources = s.Styles.Value.Render(fmt.Sprintf("sources %d (all)", s.SourceTotal))
	}

	line := fmt.Sprintf("%s  %s  %s  %s",
		s.Styles.Label.Render("pos")+" "+s.Styles.Value.Render(position),
		sources,
		follow,
		"",
	)

	return s.Styles.Base.Width(s.Width).Render(line)
}

// Height is the number of terminal rows the status bar occupies.
func (s StatusBar) Height() int {
	return 1
}
