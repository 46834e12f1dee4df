// Package logging builds the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupParams controls where and how verbosely jot logs.
type SetupParams struct {
	Level   string // debug, info, warn, error
	Verbose bool   // forces debug
	File    string // rotate into this exact path instead of writing to Stderr
	Stderr  io.Writer
}

// Setup returns a text logger and a closer for the underlying file, if any.
func Setup(params SetupParams) (*slog.Logger, io.Closer) {
	level := GetLevel(params.Level)
	if params.Verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if params.File == "" {
		out := params.Stderr
		if out == nil {
			out = os.Stderr
		}
		return slog.New(slog.NewTextHandler(out, opts)), nopCloser{}
	}

	rotating := &lumberjack.Logger{
		Filename:   params.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		LocalTime:  true,
	}
	return slog.New(slog.NewTextHandler(rotating, opts)), rotating
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// GetLevel maps a level name to a slog level, defaulting to info.
func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
