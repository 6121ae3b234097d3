// Package logger configures charmbracelet/log for linepick.
//
// The picker owns the terminal, so logs never go to stdout: they go to stderr
// or, with -log, to a file.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(w io.Writer, prefix string, level log.Level, caller bool, showTimestamp bool, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       formatter,
	})
}

// Setup replaces the default logger.
// With an empty path logs go to stderr; otherwise they are appended to the
// file at path, and the returned closer must be closed on exit.
func Setup(debug bool, path string) (io.Closer, error) {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}

	if path == "" {
		log.SetDefault(NewWithConfig(os.Stderr, "", level, debug, debug, log.TextFormatter))
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetDefault(NewWithConfig(f, "", level, debug, true, log.LogfmtFormatter))
	return f, nil
}
