package tui

import (
	"sort"

	"github.com/charmbracelet/huh"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/basalt-tools/peek/pkg/logentry"
)

// FilterDialog is a huh multi-select overlay letting the operator choose
// which sources datasource.DataSource.SetSelectedSources should keep. An
// empty or all-selected result collapses back to the Plain projection
// (spec.md invariant 5).
type FilterDialog struct {
	form     *huh.Form
	selected []uint64
}

// NewFilterDialog builds a dialog over the known sources, preselecting
// every source whose map value is true.
func NewFilterDialog(sources map[logentry.Source]bool) *FilterDialog {
	names := make([]string, 0, len(sources))
	byName := make(map[string]logentry.Source, len(sources))
	var preselected []uint64
	for source, isSelected := range sources {
		names = append(names, source.Name)
		byName[source.Name] = source
		if isSelected {
			preselected = append(preselected, source.Hash)
		}
	}
	sort.Strings(names)

	options := make([]huh.Option[uint64], 0, len(names))
	for _, name := range names {
		options = append(options, huh.NewOption(name, byName[name].Hash))
	}

	d := &FilterDialog{selected: preselected}
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[uint64]().
				Title("Filter by source").
				Options(options...).
				Value(&d.selected),
		),
	)
	return d
}

// Init starts the embedded huh form.
func (d *FilterDialog) Init() tea.Cmd {
	return d.form.Init()
}

// Update forwards msg to the embedded form.
func (d *FilterDialog) Update(msg tea.Msg) tea.Cmd {
	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}
	return cmd
}

// View renders the embedded form.
func (d *FilterDialog) View() string {
	return d.form.View()
}

// Done reports whether the operator has submitted or aborted the dialog.
func (d *FilterDialog) Done() bool {
	return d.form.State == huh.StateCompleted || d.form.State == huh.StateAborted
}

// Aborted reports whether the operator cancelled rather than submitted.
func (d *FilterDialog) Aborted() bool {
	return d.form.State == huh.StateAborted
}

// Selected returns the set of source hashes the operator chose.
func (d *FilterDialog) Selected() map[uint64]struct{} {
	set := make(map[uint64]struct{}, len(d.selected))
	for _, hash := range d.selected {
		set[hash] = struct{}{}
	}
	return set
}
