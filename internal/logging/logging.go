// Package logging builds the command's slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Config configures the logger.
type Config struct {
	// Writer is where logs go. Defaults to os.Stderr.
	Writer io.Writer
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string
	// JSON selects the JSON handler.
	JSON bool
	// Color enables tint's colored output for the text handler.
	Color bool
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// New returns a logger configured by cfg. An unknown level falls back to info.
func New(cfg Config) *slog.Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	level, _ := ParseLevel(cfg.Level)

	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(cfg.Writer, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !cfg.Color,
	}))
}
