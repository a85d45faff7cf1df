// Package logging builds the slog.Logger used by the command line tools.
// Library packages never construct loggers; they accept one through
// options and discard output when none is given.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Config configures New. The zero value logs Info and above as text to
// stderr.
type Config struct {
	Level  slog.Level
	JSON   bool
	Writer io.Writer
	// Component, when set, is attached to every record.
	Component string
}

// New returns a logger for cfg.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	if cfg.Component != "" {
		h = h.WithAttrs([]slog.Attr{slog.String("component", cfg.Component)})
	}

	return slog.New(h)
}

// ParseLevel accepts debug, info, warn/warning and error, in any case.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// ParseFormat reports whether format selects JSON output for w. Accepted
// values are text, json and auto (or empty); auto picks text when w is a
// terminal and JSON otherwise.
func ParseFormat(format string, w io.Writer) (json bool, err error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto":
		return !IsTerminal(w), nil
	case "text":
		return false, nil
	case "json":
		return true, nil
	default:
		return false, fmt.Errorf("logging: unknown format %q", format)
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
