// Package uiprefs persists the handful of TUI display preferences that
// should survive across runs: whether long lines wrap, which palette to
// draw with, and how timestamps are rendered. It is deliberately small —
// anything session-specific (open file, selected sources, search query)
// belongs to datasource.DataSource, not here.
package uiprefs

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/basalt-tools/peek/pkg/ty"
)

// dirName and fileName make up os.UserConfigDir()/peek/prefs.yaml.
const (
	dirName  = "peek"
	fileName = "prefs.yaml"
)

// TimestampFormat selects how LogEntry.Date is rendered in the entry list.
type TimestampFormat string

const (
	TimestampClock TimestampFormat = "clock" // 15:04:05.000
	TimestampFull  TimestampFormat = "full"  // Mon Jan 2 2006 15:04:05.000 MST
)

// Prefs is the on-disk preference document. Every field is an ty.Opt so a
// prefs file written by an older version still round-trips: unset fields
// fall back to DefaultPrefs at read time.
type Prefs struct {
	WrapLines ty.Opt[bool]            `yaml:"wrapLines"`
	Palette   ty.Opt[string]          `yaml:"palette"`
	Timestamp ty.Opt[TimestampFormat] `yaml:"timestamp"`
}

// DefaultPrefs is what a fresh install, or a prefs file with unset fields,
// falls back to.
func DefaultPrefs() Prefs {
	p := Prefs{}
	p.WrapLines.S(false)
	p.Palette.S("default")
	p.Timestamp.S(TimestampClock)
	return p
}

// Path returns os.UserConfigDir()/peek/prefs.yaml.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads the preference file, falling back silently to DefaultPrefs
// whenever it is absent or malformed — a viewer must never fail to start
// over a stale prefs file. Fields present in the file override the
// corresponding default; fields never written keep their default.
func Load() Prefs {
	prefs := DefaultPrefs()

	path, err := Path()
	if err != nil {
		return prefs
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return prefs
	}

	var onDisk Prefs
	if err := yaml.Unmarshal(data, &onDisk); err != nil {
		return prefs
	}

	prefs.WrapLines.Merge(&onDisk.WrapLines)
	prefs.Palette.Merge(&onDisk.Palette)
	prefs.Timestamp.Merge(&onDisk.Timestamp)
	return prefs
}

// Save writes prefs to disk, creating the parent directory on first write.
func Save(prefs Prefs) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
