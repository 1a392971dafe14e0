package mylog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/basalt-tools/peek/pkg/mylog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWritesToGivenPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peek.log")
	mylog.Configure(mylog.Options{Path: path, Level: "DEBUG"})

	mylog.Debug("hello %s", "world")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] hello world")
}

func TestLevelGating(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peek.log")
	mylog.Configure(mylog.Options{Path: path, Level: "ERROR"})

	mylog.Debug("should not appear")
	mylog.Error("should appear")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "should not appear")
	assert.Contains(t, string(data), "should appear")
}

func TestDefaultPathIsUniquePerCall(t *testing.T) {
	a := mylog.DefaultPath()
	b := mylog.DefaultPath()
	assert.NotEqual(t, a, b)
}
