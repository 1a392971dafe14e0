// SPDX-License-Identifier: GPL-3.0-only
package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/basalt-tools/peek/pkg/datasource"
	"github.com/basalt-tools/peek/pkg/tui"
	"github.com/basalt-tools/peek/pkg/uiprefs"
)

func runTUI(path string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var program *tea.Program
	wake := func() {
		if program != nil {
			program.Send(tui.WakeMsg{})
		}
	}

	entries, err := openSource(ctx, path, wake)
	if err != nil {
		return err
	}

	ds := datasource.New(entries)
	model := tui.New(ds, uiprefs.Load())
	model.LoggingPath = loggingPath

	program = tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
