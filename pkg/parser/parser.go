// Package parser turns a byte-line stream into logentry.LogEntry values and
// feeds them through a bounded channel to whatever owns the consuming end
// (normally a streambuf.Buffer). It is the only place that understands the
// two on-disk log formats.
package parser

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"

	"github.com/basalt-tools/peek/pkg/logentry"
	"github.com/basalt-tools/peek/pkg/mylog"
)

// Format selects how raw lines are interpreted.
type Format int

const (
	// FormatRaw expects a header line of
	// YYYY-MM-DDTHH:MM:SS.mmmZ [source] <first message line>,
	// with any line that doesn't match continuing the previous entry.
	FormatRaw Format = iota
	// FormatJSON expects one complete JSON object per line:
	// {"message": "...", "date": "<RFC-2822>", "source": "..."}.
	FormatJSON
)

// DefaultChannelCapacity bounds how many parsed-but-unconsumed entries may
// queue up before the parser blocks on send.
const DefaultChannelCapacity = 100

// WakeFunc is a no-op event sink supplied by the terminal framework; the
// parser pings it whenever the channel fills and once more at end-of-stream,
// so the render loop knows to drain and redraw.
type WakeFunc func()

// Parser converts an io.Reader into a stream of *logentry.LogEntry on its
// Entries channel. Run it from its own goroutine.
type Parser struct {
	format  Format
	wake    WakeFunc
	entries chan *logentry.LogEntry
}

// New builds a Parser for the given format. wake may be nil.
func New(format Format, wake WakeFunc) *Parser {
	if wake == nil {
		wake = func() {}
	}
	return &Parser{
		format:  format,
		wake:    wake,
		entries: make(chan *logentry.LogEntry, DefaultChannelCapacity),
	}
}

// Entries is the consumer-facing receive end of the bounded channel.
func (p *Parser) Entries() <-chan *logentry.LogEntry {
	return p.entries
}

// Run scans r to EOF (or until ctx is cancelled), parsing and delivering
// entries, then closes the channel. Read failures and malformed JSON lines
// are logged to mylog and skipped (in raw format a non-header line continues
// the previous entry instead); Run never returns an error because no
// failure here is fatal — the only fatal error is the initial file open,
// which happens before Run is ever called.
func (p *Parser) Run(ctx context.Context, r io.Reader) {
	defer close(p.entries)
	defer p.wake()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var pending *logentry.LogEntry

	emitPending := func() {
		if pending == nil {
			return
		}
		p.send(ctx, pending)
		pending = nil
	}

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			emitPending()
			return
		default:
		}

		line := scanner.Text()
		switch p.format {
		case FormatJSON:
			entry, err := parseJSONLine(line)
			if err != nil {
				mylog.Warn("parser: dropping malformed json line: %v", err)
				continue
			}
			p.send(ctx, entry)
		default:
			if header, ok := parseRawHeader(line); ok {
				emitPending()
				pending = header
			} else if pending != nil {
				pending.Append(line)
			} else {
				mylog.Warn("parser: dropping line with no preceding header: %q", line)
			}
		}
	}
	emitPending()

	if err := scanner.Err(); err != nil {
		mylog.Warn("parser: read error: %v", err)
	}
}

// send delivers an entry, blocking if the channel is full, and wakes the UI
// whenever that happens so it knows to drain.
func (p *Parser) send(ctx context.Context, entry *logentry.LogEntry) {
	if len(p.entries) == cap(p.entries) {
		p.wake()
	}
	select {
	case p.entries <- entry:
	case <-ctx.Done():
	}
}

// parseRawHeader recognizes a raw-format header line. It returns ok=false
// for any line that isn't a well-formed header, so the caller can treat it
// as a continuation of the previous entry instead.
func parseRawHeader(line string) (*logentry.LogEntry, bool) {
	firstSpace := strings.IndexByte(line, ' ')
	if firstSpace < 0 {
		return nil, false
	}
	dateToken := line[:firstSpace]
	rest := line[firstSpace+1:]

	secondSpace := strings.IndexByte(rest, ' ')
	if secondSpace < 0 {
		return nil, false
	}
	sourceToken := rest[:secondSpace]
	message := rest[secondSpace+1:]

	if len(sourceToken) < 2 || sourceToken[0] != '[' || sourceToken[len(sourceToken)-1] != ']' {
		return nil, false
	}
	sourceName := sourceToken[1 : len(sourceToken)-1]

	dateToken = strings.TrimSuffix(dateToken, "Z")
	date, err := time.Parse("2006-01-02T15:04:05.000", dateToken)
	if err != nil {
		return nil, false
	}

	return logentry.New(message, date, logentry.NewSource(sourceName)), true
}

type jsonLine struct {
	Message string `json:"message"`
	Date    string `json:"date"`
	Source  string `json:"source"`
}

func parseJSONLine(line string) (*logentry.LogEntry, error) {
	var jl jsonLine
	if err := json.Unmarshal([]byte(line), &jl); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	date, err := mail.ParseDate(jl.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", jl.Date, err)
	}
	return logentry.New(jl.Message, date, logentry.NewSource(jl.Source)), nil
}
