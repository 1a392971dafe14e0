// SPDX-License-Identifier: GPL-3.0-only
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#3B82F6") // Blue
	ColorSuccess   = lipgloss.Color("#22C55E") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorBorder    = lipgloss.Color("#374151") // Dark gray
	ColorBg        = lipgloss.Color("#1F2937") // Dark background
	ColorBgActive  = lipgloss.Color("#374151") // Active background
	ColorText      = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted = lipgloss.Color("#9CA3AF") // Muted text
)

// Styles contains all UI styles for the single-file log viewer.
type Styles struct {
	// Base styles
	App       lipgloss.Style
	Header    lipgloss.Style
	Footer    lipgloss.Style
	MainView  lipgloss.Style
	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style

	// Log view styles
	LogList      lipgloss.Style
	LogEntry     lipgloss.Style
	LogSelected  lipgloss.Style
	LogTimestamp lipgloss.Style
	LogMessage   lipgloss.Style
	LogContext   lipgloss.Style

	// Detail dialog styles
	Detail       lipgloss.Style
	DetailTitle  lipgloss.Style
	DetailKey    lipgloss.Style
	DetailValue  lipgloss.Style
	DetailBorder lipgloss.Style

	// Search input styles
	SearchInput       lipgloss.Style
	SearchInputActive lipgloss.Style
	SearchPrompt      lipgloss.Style

	// Border styles
	BorderVertical   lipgloss.Style
	BorderHorizontal lipgloss.Style
}

// DefaultStyles creates the default style set.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle(),

		Header: lipgloss.NewStyle().
			Background(ColorBg).
			Foreground(ColorText).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(ColorBg).
			Foreground(ColorTextMuted).
			Padding(0, 1),

		MainView: lipgloss.NewStyle(),

		StatusBar: lipgloss.NewStyle().
			Background(ColorBg).
			Foreground(ColorTextMuted).
			Padding(0, 1),

		HelpBar: lipgloss.NewStyle().
			Background(ColorBg).
			Foreground(ColorMuted).
			Padding(0, 1),

		// Log view
		LogList: lipgloss.NewStyle(),

		LogEntry: lipgloss.NewStyle().
			Foreground(ColorText),

		LogSelected: lipgloss.NewStyle().
			Background(ColorBgActive).
			Foreground(ColorText).
			Bold(true),

		LogTimestamp: lipgloss.NewStyle().
			Foreground(ColorMuted),

		LogMessage: lipgloss.NewStyle().
			Foreground(ColorText),

		LogContext: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Italic(true),

		// Detail dialog
		Detail: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1),

		DetailKey: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true),

		DetailValue: lipgloss.NewStyle().
			Foreground(ColorText),

		DetailBorder: lipgloss.NewStyle().
			Foreground(ColorBorder),

		// Search
		SearchInput: lipgloss.NewStyle().
			Background(ColorBg).
			Foreground(ColorText).
			Padding(0, 1),

		SearchInputActive: lipgloss.NewStyle().
			Background(ColorBgActive).
			Foreground(ColorText).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary),

		SearchPrompt: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),

		// Borders
		BorderVertical: lipgloss.NewStyle().
			Foreground(ColorBorder),

		BorderHorizontal: lipgloss.NewStyle().
			Foreground(ColorBorder),
	}
}
