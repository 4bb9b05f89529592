// Package logging sets up the file-backed debug logger. The TUI owns the
// terminal, so log output always goes to a file, never to the screen.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Open returns a logger appending to the given file and a close func.
func Open(path string) (*log.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.InfoLevel,
	})
	closer := func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close for the log file.
			_ = cerr
		}
	}
	return logger, closer, nil
}

// Discard returns a logger that drops everything, for tests and for runs
// where the log file cannot be opened.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
