package tui

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/TylerBrock/colorjson"
	"github.com/atotto/clipboard"

	"github.com/basalt-tools/peek/pkg/logentry"
)

// detailJSONPattern matches a single brace-balanced JSON object embedded in
// a message — used to decide whether the detail dialog pretty-prints a JSON
// payload alongside the raw message.
var detailJSONPattern = regexp.MustCompile(`{(?:[^{}]|(?P<recurse>{[^{}]*}))*}`)

// renderDetail renders the full-message detail dialog for entry: its
// source, full timestamp, line count, and — when the message embeds a JSON
// object — a colorized expansion of it.
func (m Model) renderDetail(entry *logentry.LogEntry) string {
	title := m.Styles.DetailTitle.Render("Entry detail")

	rows := []string{
		m.Styles.DetailKey.Render("source: ") + m.Styles.DetailValue.Render(entry.Source.Name),
		m.Styles.DetailKey.Render("time:   ") + m.Styles.DetailValue.Render(entry.DateFull()),
		m.Styles.DetailKey.Render("lines:  ") + m.Styles.DetailValue.Render(fmt.Sprintf("%d", entry.LinesCount)),
		"",
		m.Styles.DetailValue.Render(entry.Message),
	}

	if expanded := expandEmbeddedJSON(entry.Message); expanded != "" {
		rows = append(rows, "", m.Styles.DetailKey.Render("json:"), expanded)
	}

	rows = append(rows, "", m.Styles.HelpBar.Render("y: yank message    esc: close"))

	body := title
	for _, row := range rows {
		body += "\n" + row
	}

	return m.Styles.Detail.Width(m.Width - 4).Render(body)
}

func expandEmbeddedJSON(message string) string {
	match := detailJSONPattern.FindString(message)
	if match == "" {
		return ""
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(match), &obj); err != nil {
		return ""
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	out, err := f.Marshal(obj)
	if err != nil {
		return ""
	}
	return string(out)
}

// yankActiveMessage copies the active entry's raw message to the system
// clipboard.
func yankActiveMessage(entry *logentry.LogEntry) error {
	return clipboard.WriteAll(entry.Message)
}
