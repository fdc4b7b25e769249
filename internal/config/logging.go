package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel converts a level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// SetupLogger installs a JSON slog handler writing to path as the default
// logger. The terminal belongs to the UI, so logs never go to stdout.
// The returned closer releases the log file.
func SetupLogger(path string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return f, nil
}

// Resolve returns the log path and level from the file config, falling back
// to the defaults.
func (c LogConfig) Resolve() (string, slog.Level, error) {
	path := DefaultLogPath()
	if c.Path != nil && *c.Path != "" {
		path = *c.Path
	}
	var lvl string
	if c.Level != nil {
		lvl = *c.Level
	}
	level, err := ParseLevel(lvl)
	return path, level, err
}
