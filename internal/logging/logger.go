// Package logging provides a structured logging wrapper around
// charmbracelet/log, plus the stdout diagnostic line used for recoverable
// per-item failures.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultLogger *log.Logger
	defaultOnce   sync.Once
)

// New creates a stderr logger at the given level. Valid levels are "debug",
// "info", "warn"/"warning", and "error"; anything else falls back to info.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the package-level logger, creating it at info level on
// first use.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// SetLevel updates the level of the default logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
