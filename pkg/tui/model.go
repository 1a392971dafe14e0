// SPDX-License-Identifier: GPL-3.0-only
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/basalt-tools/peek/pkg/datasource"
	"github.com/basalt-tools/peek/pkg/logentry"
	"github.com/basalt-tools/peek/pkg/uiprefs"
)

// WakeMsg is sent through the running tea.Program whenever the parser has
// new entries (or has reached end-of-stream) so the model knows to reload
// and redraw. It carries no payload — the model always re-reads from
// DataSource, never from the message itself.
type WakeMsg struct{}

// Model is the single Bubble Tea model driving the viewer: one DataSource,
// one viewport of rendered rows, and the search/filter/detail overlays.
type Model struct {
	Width  int
	Height int

	DataSource *datasource.DataSource
	Prefs      uiprefs.Prefs

	Viewport viewport.Model
	Styles   Styles
	Keys     KeyMap

	SearchBar   SearchBar
	StatusBar   StatusBar
	FilterForm  *FilterDialog
	DetailShown bool
	FollowMode  bool

	// LoggingPath is surfaced on the debug footer; set by the caller from
	// the --logging-path flag.
	LoggingPath string
	ShowDebug   bool

	ShowHelp bool
	status   string

	quitting bool
}

// New builds a Model bound to ds. prefs seeds the line-wrap and timestamp
// format preferences; it is the value returned by uiprefs.Load. The palette
// preference is carried in Prefs but not applied: the model always draws
// with DefaultStyles.
func New(ds *datasource.DataSource, prefs uiprefs.Prefs) Model {
	vp := viewport.New(0, 0)
	m := Model{
		DataSource: ds,
		Prefs:      prefs,
		Viewport:   vp,
		Styles:     DefaultStyles(),
		Keys:       DefaultKeyMap(),
		SearchBar:  NewSearchBar(),
		StatusBar:  NewStatusBar(),
		FollowMode: true,
	}
	return m
}

// Init starts the model with no pending commands — the parser goroutine is
// already running and will wake the program on its own.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) contentHeight() int {
	h := m.Height - 1 /* header */ - m.StatusBar.Height() - 1 /* search/help line */
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) reload() {
	height := m.contentHeight()
	m.DataSource.LoadLogs(height)
	m.DataSource.PrepareForDraw(height)
	m.refreshViewport()
	m.refreshStatusBar()
}

func (m *Model) refreshStatusBar() {
	selectedCount := 0
	sourceTotal := 0
	m.DataSource.IterateSources(func(_ logentry.Source, selected bool) {
		sourceTotal++
		if selected {
			selectedCount++
		}
	})
	m.StatusBar.Width = m.Width
	m.StatusBar.UpdateFromDataSource(m.DataSource, m.FollowMode, selectedCount, sourceTotal)
}

func (m *Model) refreshViewport() {
	m.Viewport.Width = m.Width
	m.Viewport.Height = m.contentHeight()

	var rows []string
	selected := m.DataSource.SelectedIndex
	m.DataSource.IterateEntriesToDraw(func(row int, entry *logentry.LogEntry) {
		rows = append(rows, m.renderRow(row, entry, row == selected))
	})
	m.Viewport.SetContent(strings.Join(rows, "\n"))
}

func (m Model) renderRow(row int, entry *logentry.LogEntry, isSelected bool) string {
	dateText := entry.DateTime
	if m.Prefs.Timestamp.Value == uiprefs.TimestampFull {
		dateText = entry.DateFull()
	}
	timestamp := m.Styles.LogTimestamp.Render(dateText)
	source := m.Styles.LogContext.Render("[" + entry.Source.Name + "]")
	message := entry.OneLineMessage
	if m.Prefs.WrapLines.Value {
		message = entry.Message
	}

	line := fmt.Sprintf("%s %s %s", timestamp, source, m.Styles.LogMessage.Render(message))
	if isSelected {
		return m.Styles.LogSelected.Width(m.Width).Render(line)
	}
	return m.Styles.LogEntry.Render(line)
}

// Update handles Bubble Tea messages: window resize, keypresses (dispatched
// through the active overlay first, then the default keymap), and WakeMsg.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.reload()
		return m, nil

	case WakeMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.FilterForm != nil {
		return m.handleFilterKey(msg)
	}
	if m.SearchBar.Active {
		return m.handleSearchKey(msg)
	}
	if m.DetailShown {
		return m.handleDetailKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.FilterForm
	cmd := form.Update(msg)
	if form.Done() {
		if !form.Aborted() {
			m.DataSource.SetSelectedSources(form.Selected())
		}
		m.FilterForm = nil
		m.reload()
		return m, nil
	}
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ClearSearch):
		m.SearchBar.Close()
		m.DataSource.StopSearch()
		m.reload()
		return m, nil
	case msg.Type == tea.KeyEnter:
		query := m.SearchBar.Query()
		m.SearchBar.Close()
		if query != "" {
			m.DataSource.StartSearch(query)
		}
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchBar, cmd = m.SearchBar.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ToggleDetail), key.Matches(msg, m.Keys.ClearSearch):
		m.DetailShown = false
		return m, nil
	case key.Matches(msg, m.Keys.Yank):
		if entry, ok := m.DataSource.ActiveMessage(); ok {
			_ = yankActiveMessage(entry)
			m.status = "yanked to clipboard"
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		m.DataSource.SelectPrevious()
		m.reload()

	case key.Matches(msg, m.Keys.Down):
		m.DataSource.SelectNext()
		m.reload()

	case key.Matches(msg, m.Keys.PageUp):
		m.DataSource.GoToPrevPage()
		m.reload()

	case key.Matches(msg, m.Keys.PageDown):
		m.DataSource.GoToNextPage()
		m.reload()

	case key.Matches(msg, m.Keys.Home):
		m.DataSource.SelectedIndex = 0
		m.reload()

	case key.Matches(msg, m.Keys.End):
		if total := m.DataSource.PaginationState().Total.Value; total > 0 {
			m.DataSource.SelectedIndex = total - 1
		}
		m.reload()

	case key.Matches(msg, m.Keys.ToggleWrap):
		m.Prefs.WrapLines.S(!m.Prefs.WrapLines.Value)
		_ = uiprefs.Save(m.Prefs)
		m.refreshViewport()

	case key.Matches(msg, m.Keys.Search):
		m.SearchBar.Open()

	case key.Matches(msg, m.Keys.NextSearchResult):
		m.DataSource.GoToNextSearchResult()
		m.reload()

	case key.Matches(msg, m.Keys.PrevSearchResult):
		m.DataSource.GoToPrevSearchResult()
		m.reload()

	case key.Matches(msg, m.Keys.ClearSearch):
		m.DataSource.StopSearch()
		m.reload()

	case key.Matches(msg, m.Keys.ToggleDetail):
		if _, ok := m.DataSource.ActiveMessage(); ok {
			m.DetailShown = true
		}

	case key.Matches(msg, m.Keys.FilterSources):
		sources := map[logentry.Source]bool{}
		m.DataSource.IterateSources(func(source logentry.Source, selected bool) {
			sources[source] = selected
		})
		m.FilterForm = NewFilterDialog(sources)
		return m, m.FilterForm.Init()

	case key.Matches(msg, m.Keys.Follow):
		m.FollowMode = !m.FollowMode
		m.refreshStatusBar()

	case key.Matches(msg, m.Keys.Debug):
		m.ShowDebug = !m.ShowDebug

	case key.Matches(msg, m.Keys.Help):
		m.ShowHelp = !m.ShowHelp
	}

	return m, nil
}

// View renders the full screen: header, log viewport (or detail/filter
// overlay), status bar, and search/help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.Styles.Header.Width(m.Width).Render("peek")

	var body string
	switch {
	case m.FilterForm != nil:
		body = m.FilterForm.View()
	case m.DetailShown:
		if entry, ok := m.DataSource.ActiveMessage(); ok {
			body = m.renderDetail(entry)
		}
	default:
		body = m.Viewport.View()
	}

	footer := m.renderSearchBar()
	if footer == "" && m.status != "" {
		footer = m.Styles.HelpBar.Render(m.status)
	}
	if m.ShowDebug {
		footer = m.renderDebugFooter()
	}
	if m.ShowHelp {
		footer = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		m.StatusBar.View(),
		m.Styles.Footer.Width(m.Width).Render(footer),
	)
}

func (m Model) renderDebugFooter() string {
	path := m.LoggingPath
	if path == "" {
		path = "(default)"
	}
	pagination := m.DataSource.PaginationState()
	search := m.DataSource.SearchPaginationState()
	matches := 0
	if search.HasMatches {
		matches = search.Current
	}
	return m.Styles.HelpBar.Render(fmt.Sprintf(
		"log: %s  buffer: %d  match: %d", path, pagination.Total.Value, matches,
	))
}

func (m Model) renderHelp() string {
	var lines []string
	for _, group := range m.Keys.FullHelp() {
		var parts []string
		for _, binding := range group {
			parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
		}
		lines = append(lines, strings.Join(parts, "  "))
	}
	return strings.Join(lines, "\n")
}
