// Package printer renders parsed log entries for the non-TUI dump path
// (`peek --no-tui`): a text/template over each *logentry.LogEntry, colored
// according to InitColorState (explicit setting, then NO_COLOR, then a TTY
// probe of the writer).
package printer

import (
	"context"
	"io"
	"text/template"

	"github.com/basalt-tools/peek/pkg/logentry"
)

// DefaultTemplate mirrors the raw log format: timestamp, bracketed source,
// first line of the message.
const DefaultTemplate = `{{ColorTimestamp .DateTime}} [{{ColorContext .Source.Name}}] {{.OneLineMessage}}`

// LogPrinter dumps a stream of entries to an output.
type LogPrinter interface {
	Display(ctx context.Context, entries <-chan *logentry.LogEntry) error
}

// WrapIoWritter renders every entry received on entries through a template
// built from templateSrc (DefaultTemplate when empty), until entries closes
// or ctx is cancelled.
func WrapIoWritter(ctx context.Context, entries <-chan *logentry.LogEntry, writer io.Writer, templateSrc string) error {
	if templateSrc == "" {
		templateSrc = DefaultTemplate
	}

	tmpl, err := template.New("dump").Funcs(GetTemplateFunctionsMap()).Parse(templateSrc + "\n")
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case entry, ok := <-entries:
			if !ok {
				return nil
			}
			if err := tmpl.Execute(writer, entry); err != nil {
				return err
			}
		}
	}
}
