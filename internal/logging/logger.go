// Package logging provides the structured logger used by the gravsim CLI.
// It wraps slog with a level taken from a flag or the GRAVSIM_LOG_LEVEL
// environment variable and a text or JSON handler.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const EnvLevel = "GRAVSIM_LOG_LEVEL"

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w. An empty level falls back to the
// environment and then to INFO.
func New(w io.Writer, level string, format Format) *Logger {
	if w == nil {
		w = os.Stderr
	}
	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{slog.New(handler)}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Fatal logs err and exits with status 1.
func (l *Logger) Fatal(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.Error(msg, args...)
	os.Exit(1)
}
