// Package logging builds the charmbracelet logger shared by the CLI, the
// game adapter and the frontends.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPath is where logs go when no file is given. The terminal
// frontend owns stdout, so logs never go there by default.
const DefaultPath = "~/.nightescape/nightescape.log"

// Stderr as a path selects standard error instead of a file.
const Stderr = "-"

// Options configures New.
type Options struct {
	Level  string // debug, info, warn, error; empty means info
	Path   string // file path, "-" for stderr, empty for DefaultPath
	Prefix string
}

// New returns a timestamped logger plus a closer for the underlying file.
// The closer is a no-op when logging to stderr.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		lvl, err := log.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	out, closer, err := openOutput(opts.Path)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func openOutput(path string) (io.Writer, io.Closer, error) {
	if path == Stderr {
		return os.Stderr, nopCloser{}, nil
	}
	if path == "" {
		path = DefaultPath
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}
	return f, f, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
