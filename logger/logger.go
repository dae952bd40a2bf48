// SPDX-License-Identifier: MIT

// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Setup installs a text or JSON handler writing to w as the default logger.
// Unknown formats fall back to text, unknown levels to info.
func Setup(w io.Writer, level string, format string) {
	slog.SetDefault(New(w, level, format))
}

// New builds a logger without installing it.
func New(w io.Writer, level string, format string) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// WithComponent tags the default logger with a component name.
func WithComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
