// SPDX-License-Identifier: GPL-3.0-only
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/basalt-tools/peek/pkg/log/printer"
)

func runDump(path string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entries, err := openSource(ctx, path, nil)
	if err != nil {
		return err
	}

	printer.InitColorState(nil, os.Stdout)

	p := printer.PrintPrinter{Template: template}
	if err := p.Display(ctx, entries); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	return nil
}
