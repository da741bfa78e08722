// ABOUTME: Structured logging configuration using log/slog.
// ABOUTME: Init configures the default logger; New builds one for any writer, level, and format.

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init configures the default slog logger based on environment variables.
// LOG_LEVEL: debug, info, warn, error (default: info)
// LOG_FORMAT: text, json (default: text)
func Init() {
	slog.SetDefault(New(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT")))
}

// New returns a logger writing to w. Unknown levels map to info and
// unknown formats to text.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
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
