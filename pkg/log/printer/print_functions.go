package printer

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/TylerBrock/colorjson"
	"github.com/fatih/color"
)

const regexJSONExtraction = "{(?:[^{}]|(?P<recurse>{[^{}]*}))*}"

// FormatDate renders t using an arbitrary layout string.
// Usage in template: {{Format "15:04:05" .Date}}
func FormatDate(layout string, t time.Time) string {
	return t.Format(layout)
}

// FormatTimestamp formats t in local time, returning "N/A" for a zero value.
func FormatTimestamp(t time.Time, layout string) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format(layout)
}

// ExpandJson pretty-colorizes every non-empty JSON object embedded in value
// and returns them as newline-prefixed indented blocks; the original text is
// not included, and the result is empty when value embeds no such object.
// Usage in template: {{ExpandJson .Message}}
func ExpandJson(value string) string {
	reg := regexp.MustCompile(regexJSONExtraction)
	f := colorjson.NewFormatter()
	f.Indent = 2
	str := ""
	for _, jsonStr := range reg.FindAllString(value, -1) {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(jsonStr), &obj); err != nil || len(obj) == 0 {
			continue
		}
		s, err := f.Marshal(obj)
		if err != nil {
			log.Println("failed to marshal json " + jsonStr)
			continue
		}
		str += "\n" + string(s)
	}
	return str
}

// Trim removes leading and trailing whitespace from a string.
// Usage in template: {{Trim .Message}} or {{.Message | Trim}}
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ColorTimestamp colors a formatted timestamp in dim gray.
// Usage in template: {{ColorTimestamp .DateTime}}
func ColorTimestamp(timestamp string) string {
	if !IsColorEnabled() {
		return timestamp
	}
	return color.New(color.FgHiBlack).Sprint(timestamp)
}

// ColorContext colors a source name in magenta.
// Usage in template: {{ColorContext .Source.Name}}
func ColorContext(sourceName string) string {
	if !IsColorEnabled() {
		return sourceName
	}
	return color.MagentaString(sourceName)
}

// ColorString applies a named color to text.
// Usage in template: {{ColorString "red" .OneLineMessage}}
// Available colors: red, green, yellow, blue, magenta, cyan, white, black, dim/gray/grey.
func ColorString(colorName, text string) string {
	if !IsColorEnabled() {
		return text
	}

	switch strings.ToLower(colorName) {
	case "red":
		return color.RedString(text)
	case "green":
		return color.GreenString(text)
	case "yellow":
		return color.YellowString(text)
	case "blue":
		return color.BlueString(text)
	case "magenta":
		return color.MagentaString(text)
	case "cyan":
		return color.CyanString(text)
	case "white":
		return color.WhiteString(text)
	case "black":
		return color.BlackString(text)
	case "dim", "gray", "grey":
		return color.New(color.FgHiBlack).Sprint(text)
	default:
		return text
	}
}

// Bold makes text bold.
// Usage in template: {{Bold .Source.Name}}
func Bold(text string) string {
	if !IsColorEnabled() {
		return text
	}
	return color.New(color.Bold).Sprint(text)
}

// GetTemplateFunctionsMap is the function set available to a dump template.
func GetTemplateFunctionsMap() template.FuncMap {
	return template.FuncMap{
		"Format":          FormatDate,
		"FormatTimestamp": FormatTimestamp,
		"ExpandJson":      ExpandJson,
		"Trim":            Trim,
		"ColorTimestamp":  ColorTimestamp,
		"ColorContext":    ColorContext,
		"ColorString":     ColorString,
		"Bold":            Bold,
	}
}
