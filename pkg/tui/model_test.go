// SPDX-License-Identifier: GPL-3.0-only
package tui

import (
	"bytes"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/basalt-tools/peek/pkg/datasource"
	"github.com/basalt-tools/peek/pkg/logentry"
	"github.com/basalt-tools/peek/pkg/uiprefs"
)

func channelOfEntries(entries ...*logentry.LogEntry) <-chan *logentry.LogEntry {
	ch := make(chan *logentry.LogEntry, len(entries))
	for _, e := range entries {
		ch <- e
	}
	close(ch)
	return ch
}

func newTestModel(entries ...*logentry.LogEntry) Model {
	ds := datasource.New(channelOfEntries(entries...))
	return New(ds, uiprefs.DefaultPrefs())
}

func TestModelNavigationMovesSelection(t *testing.T) {
	a := logentry.New("first", time.Now(), logentry.NewSource("app"))
	b := logentry.New("second", time.Now(), logentry.NewSource("app"))
	m := newTestModel(a, b)

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = sized.(Model)
	require.Equal(t, 0, m.DataSource.SelectedIndex)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(Model)
	require.Equal(t, 1, m.DataSource.SelectedIndex)

	prev, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = prev.(Model)
	require.Equal(t, 0, m.DataSource.SelectedIndex)
}

func TestModelSearchOpensAndClearsOnEscape(t *testing.T) {
	m := newTestModel(logentry.New("hello world", time.Now(), logentry.NewSource("app")))
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = sized.(Model)

	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = opened.(Model)
	require.True(t, m.SearchBar.Active)

	closed, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = closed.(Model)
	require.False(t, m.SearchBar.Active)
}

func TestModelToggleDetailRequiresActiveEntry(t *testing.T) {
	m := newTestModel(logentry.New("entry one", time.Now(), logentry.NewSource("app")))
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = sized.(Model)

	toggled, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = toggled.(Model)
	require.True(t, m.DetailShown)

	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = back.(Model)
	require.False(t, m.DetailShown)
}

func TestModelQuitSendsQuitCmd(t *testing.T) {
	m := newTestModel()
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = sized.(Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
}

func TestModelRendersLogLinesEndToEnd(t *testing.T) {
	entry := logentry.New("checkout completed for user 42", time.Now(), logentry.NewSource("checkout"))
	m := newTestModel(entry)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	waitForOutput(t, tm, func(out []byte) bool {
		return bytes.Contains(out, []byte("checkout"))
	}, "expected the viewport to render the seeded entry's source")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

func waitForOutput(t *testing.T, tm *teatest.TestModel, condition func([]byte) bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		out, err := io.ReadAll(tm.Output())
		if err == nil && condition(out) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	out, _ := io.ReadAll(tm.Output())
	t.Fatalf("%s. last output:\n%s", msg, string(out))
}
