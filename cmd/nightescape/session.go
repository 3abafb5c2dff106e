package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/nightescape/internal/config"
	"github.com/vovakirdan/nightescape/internal/core"
	"github.com/vovakirdan/nightescape/internal/games/escape"
	"github.com/vovakirdan/nightescape/internal/logging"
	"github.com/vovakirdan/nightescape/internal/storage"
)

// session holds what every play command shares: logger, run history and
// the optional tuning watcher.
type session struct {
	logger    *log.Logger
	logCloser io.Closer
	store     *storage.Store
	watcher   *config.Watcher
}

// openSession sets up logging, storage and hot reload from the global flags.
// Storage and watcher failures are logged and the game runs without them.
func openSession() (*session, error) {
	logger, closer, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		Path:   flagLogFile,
		Prefix: "nightescape",
	})
	if err != nil {
		return nil, err
	}

	s := &session{logger: logger, logCloser: closer}

	escape.SetConfigPath(flagConfig)
	escape.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("run history disabled", "path", flagDBPath, "err", err)
	} else {
		s.store = store
	}

	if flagWatch {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			logger.Warn("--watch needs a tuning file on disk; none found")
		} else if w, werr := config.NewWatcher(path); werr != nil {
			logger.Warn("config watch disabled", "path", path, "err", werr)
		} else {
			s.watcher = w
			logger.Info("watching tuning file", "path", w.Path())
		}
	}

	return s, nil
}

// Close releases everything the session opened.
func (s *session) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	if s.store != nil {
		_ = s.store.Close()
	}
	_ = s.logCloser.Close()
}

// terminalConfig returns the runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}
