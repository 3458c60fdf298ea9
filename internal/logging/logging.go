// Package logging configures the process-wide slog logger. The level lives in
// a LevelVar so it can change while the server runs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var level = new(slog.LevelVar)

// Init installs a JSON or text handler writing to stdout as the default
// logger and returns it.
func Init(format, lvl string) (*slog.Logger, error) {
	return InitWriter(os.Stdout, format, lvl)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, format, lvl string) (*slog.Logger, error) {
	if err := SetLevel(lvl); err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "json":
		h = slog.NewJSONHandler(w, opts)
	case "text":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger, nil
}

// SetLevel changes the level of every logger built by Init.
func SetLevel(lvl string) error {
	parsed, err := ParseLevel(lvl)
	if err != nil {
		return err
	}
	level.Set(parsed)
	return nil
}

// Level returns the current level.
func Level() slog.Level {
	return level.Level()
}

func ParseLevel(lvl string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(lvl))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", lvl, err)
	}
	return l, nil
}
