// SPDX-License-Identifier: GPL-3.0-only
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/basalt-tools/peek/pkg/logentry"
	"github.com/basalt-tools/peek/pkg/parser"
)

// detectFormat picks raw vs JSON from an explicit --format override, falling
// back to ".log" selecting raw and anything else selecting JSON.
func detectFormat(path string) parser.Format {
	switch strings.ToLower(formatFlag) {
	case "json":
		return parser.FormatJSON
	case "raw":
		return parser.FormatRaw
	}
	if strings.ToLower(filepath.Ext(path)) == ".log" {
		return parser.FormatRaw
	}
	return parser.FormatJSON
}

// openSource starts a parser goroutine over path (or stdin when path is
// "-") and returns its entry channel. wake, when non-nil, is pinged on every
// channel-fill and at end-of-stream. The caller owns ctx's lifetime.
func openSource(ctx context.Context, path string, wake parser.WakeFunc) (<-chan *logentry.LogEntry, error) {
	p := parser.New(detectFormat(path), wake)

	if follow {
		if path == "-" {
			return nil, fmt.Errorf("--follow is not supported when reading from stdin")
		}
		probe, err := os.Open(path) // #nosec G304 -- path is the user-supplied CLI argument
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		_ = probe.Close()
		go func() {
			if err := p.RunFollow(ctx, path); err != nil {
				fmt.Fprintf(os.Stderr, "follow %s: %v\n", path, err)
			}
		}()
		return p.Entries(), nil
	}

	if path == "-" {
		go p.Run(ctx, os.Stdin)
		return p.Entries(), nil
	}

	file, err := os.Open(path) // #nosec G304 -- path is the user-supplied CLI argument
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	go func() {
		defer func() { _ = file.Close() }()
		p.Run(ctx, file)
	}()
	return p.Entries(), nil
}
