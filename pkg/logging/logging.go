// Package logging configures the process-wide slog logger.
//
// Development logs are colored through tint; production logs are JSON so the
// host's log collector can index them.
//
//	logging.Setup(cfg.LogLevel, cfg.IsProduction())
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs and returns the default logger writing to stderr.
func Setup(level string, production bool) *slog.Logger {
	logger := New(os.Stderr, ParseLevel(level), production)
	slog.SetDefault(logger)
	return logger
}

// New builds a logger on w without installing it.
func New(w io.Writer, level slog.Level, production bool) *slog.Logger {
	if production {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// ParseLevel maps debug, warn and error to their slog levels; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
