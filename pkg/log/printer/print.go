package printer

import (
	"context"
	"os"

	"github.com/basalt-tools/peek/pkg/logentry"
)

// PrintPrinter prints entries to standard output.
type PrintPrinter struct {
	Template string
}

// Display writes every entry received on entries to stdout.
func (pp PrintPrinter) Display(ctx context.Context, entries <-chan *logentry.LogEntry) error {
	return WrapIoWritter(ctx, entries, os.Stdout, pp.Template)
}
