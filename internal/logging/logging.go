// Package logging sets up the file-backed logger. The TUI owns the
// terminal, so log output always goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logfmt logger writing to path and a close function.
// An empty path yields a no-op logger that discards everything.
func New(path string) (*log.Logger, func() error, error) {
	if path == "" {
		logger := log.NewWithOptions(io.Discard, log.Options{})
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
		Level:           log.InfoLevel,
	})
	return logger, f.Close, nil
}
