// Package logging provides component-scoped diagnostic logging on top of
// log/slog. Diagnostics are discarded until Init is called, so stdout and
// stderr stay clean for the module result and user-facing output.
package logging

import (
	"io"
	"log/slog"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init configures the process-wide logger. When debug is false only warnings
// and errors are emitted.
func Init(w io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Logger returns the process-wide logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// New returns a logger scoped to a named component.
func New(component string) *slog.Logger {
	return Logger().With("component", component)
}
