package logentry

import (
	"strings"
	"time"

	"github.com/basalt-tools/peek/pkg/ty"
)

// dateTimeLayout is the short clock format cached on every entry for list rows.
const dateTimeLayout = "15:04:05.000"

// dateFullLayout is the locale-style full timestamp materialized on demand
// for the detail dialog.
const dateFullLayout = "Mon Jan 2 2006 15:04:05.000 MST"

// LogEntry is one parsed record. Once handed off by the parser it is
// immutable except through Append, which the parser only calls on its own
// still-pending entry — never on one already sent through the channel.
type LogEntry struct {
	Message          string
	Date             time.Time
	DateTime         string
	Source           Source
	OneLineMessage   string
	LowerCaseMessage string
	LinesCount       int

	dateFull ty.Lazy[string]
}

// New constructs a LogEntry, computing every derived field once.
func New(message string, date time.Time, source Source) *LogEntry {
	e := &LogEntry{
		Date:   date,
		Source: source,
	}
	e.setMessage(message)
	e.dateFull = ty.GetLazy(func() (*string, error) {
		full := e.Date.Format(dateFullLayout)
		return &full, nil
	})
	return e
}

// Append merges a continuation line into the entry's message, recomputing
// the derived fields. Callers must only invoke this on the parser's pending
// entry, before it has been published through the channel.
func (e *LogEntry) Append(line string) {
	e.setMessage(e.Message + "\n" + line)
}

func (e *LogEntry) setMessage(message string) {
	e.Message = message
	e.LowerCaseMessage = strings.ToLower(message)
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		e.OneLineMessage = message[:idx]
	} else {
		e.OneLineMessage = message
	}
	e.LinesCount = strings.Count(message, "\n") + 1
	e.DateTime = e.Date.Format(dateTimeLayout)
}

// DateFull returns the locale-formatted full timestamp, computing it once
// and caching the result for every subsequent call.
func (e *LogEntry) DateFull() string {
	full, _ := e.dateFull()
	return *full
}
