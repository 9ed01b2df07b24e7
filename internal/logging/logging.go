// Package logging sets up the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// New returns a text slog.Logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// OpenFile opens (appending) the log file at path, creating its directory.
// The terminal belongs to the TUI, so logs never go to stdout.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Setup opens the log file, installs the logger as slog's default and returns
// a function that closes the file. If the file cannot be opened, logs go to
// stderr at warn level and above.
func Setup(path string, level slog.Level) (func() error, error) {
	f, err := OpenFile(path)
	if err != nil {
		slog.SetDefault(New(os.Stderr, max(level, slog.LevelWarn)))
		return func() error { return nil }, err
	}
	slog.SetDefault(New(f, level))
	return f.Close, nil
}
