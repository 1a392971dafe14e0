package uiprefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/basalt-tools/peek/pkg/uiprefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaultsWhenAbsent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	prefs := uiprefs.Load()
	assert.Equal(t, uiprefs.DefaultPrefs(), prefs)
}

func TestLoadFallsBackToDefaultsWhenMalformed(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)

	path, err := uiprefs.Path()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("not: [valid yaml"), 0o600))

	prefs := uiprefs.Load()
	assert.Equal(t, uiprefs.DefaultPrefs(), prefs)
}

func TestSaveThenLoadRoundTripsSetFields(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs := uiprefs.DefaultPrefs()
	prefs.WrapLines.S(true)
	prefs.Palette.S("solarized")
	require.NoError(t, uiprefs.Save(prefs))

	loaded := uiprefs.Load()
	assert.True(t, loaded.WrapLines.Value)
	assert.Equal(t, "solarized", loaded.Palette.Value)
	assert.Equal(t, uiprefs.TimestampClock, loaded.Timestamp.Value)
}

func TestPartialFileKeepsDefaultsForMissingFields(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)

	path, err := uiprefs.Path()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("wrapLines: true\n"), 0o600))

	prefs := uiprefs.Load()
	assert.True(t, prefs.WrapLines.Value)
	assert.Equal(t, "default", prefs.Palette.Value)
}
