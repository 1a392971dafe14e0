// Package mylog is the side diagnostics sink: every component in the core
// logs its internal chatter here, never to the terminal the TUI owns.
package mylog

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Log level constants, ordered from most to least verbose.
const (
	LevelTrace = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var currentLevel = LevelInfo

// Options configures the diagnostics sink.
type Options struct {
	// Stdout mirrors diagnostics to stdout in addition to the log file.
	Stdout bool
	// Path overrides the default per-session log file location.
	Path string
	// Level is one of TRACE, DEBUG, INFO, WARN, ERROR (case-insensitive).
	Level string
}

// DefaultPath returns a per-process diagnostics file under the user's cache
// directory, named with a fresh session UUID so two concurrent `peek`
// invocations never collide on the same file.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, "peek")
	return filepath.Join(dir, uuid.NewString()+".log")
}

// Configure wires the diagnostics sink up per Options. It never fails loudly:
// a viewer must always start even if its own logging can't be set up.
func Configure(opts Options) {
	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}

	var writer io.Writer
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if logfile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			if opts.Stdout {
				writer = io.MultiWriter(logfile, os.Stdout)
			} else {
				writer = logfile
			}
		}
	}
	if writer == nil {
		if opts.Stdout {
			writer = os.Stdout
		} else {
			writer, _ = os.OpenFile(os.DevNull, os.O_APPEND, 0o666)
		}
	}

	log.SetOutput(writer)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	switch strings.ToUpper(opts.Level) {
	case "TRACE":
		currentLevel = LevelTrace
	case "DEBUG":
		currentLevel = LevelDebug
	case "INFO":
		currentLevel = LevelInfo
	case "WARN":
		currentLevel = LevelWarn
	case "ERROR":
		currentLevel = LevelError
	default:
		currentLevel = LevelInfo
	}
}

// Debug logs a message at DEBUG level.
func Debug(format string, v ...interface{}) {
	if currentLevel <= LevelDebug {
		log.Printf("[DEBUG] "+format, v...)
	}
}

// Info logs a message at INFO level.
func Info(format string, v ...interface{}) {
	if currentLevel <= LevelInfo {
		log.Printf("[INFO] "+format, v...)
	}
}

// Warn logs a message at WARN level.
func Warn(format string, v ...interface{}) {
	if currentLevel <= LevelWarn {
		log.Printf("[WARN] "+format, v...)
	}
}

// Error logs a message at ERROR level.
func Error(format string, v ...interface{}) {
	if currentLevel <= LevelError {
		log.Printf("[ERROR] "+format, v...)
	}
}
