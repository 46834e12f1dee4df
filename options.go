package jot

import (
	"log/slog"
	"time"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/core"
)

// Version is the release of the jot library and CLI.
const Version = "0.3.0"

// options holds the internal configuration for the jot manager.
type options struct {
	format     fs.Format
	path       string
	logger     *slog.Logger
	now        func() time.Time
	repository core.Store
	onWatchErr func(error)
}

// Option defines a functional option for configuring jot.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		format: fs.FormatJSON,
	}
}

// WithFormat selects the encoding of the backing file. Defaults to JSON.
func WithFormat(format fs.Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithPath sets the backing file.
// Defaults to notes.<format> in the working directory.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithLogger sets the logger for the manager and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the clock used to stamp new notes (useful for testing).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithRepository allows injecting a custom store (e.g. mock).
// If provided, the filesystem adapter is skipped along with the format and path options.
func WithRepository(repo core.Store) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithWatcherErrorHandler registers a callback for runtime watcher failures,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onWatchErr = fn
	}
}
