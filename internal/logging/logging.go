// Package logging constructs the process logger. Text format uses zerolog's
// console writer with TTY and NO_COLOR detection; json format emits raw
// structured events for log collectors.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to stderr at the given level. format is
// "text" or "json"; level is any zerolog level name ("debug", "info", ...).
func New(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var out = zerolog.New(os.Stderr)
	if format != "json" {
		out = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.TimeOnly,
			NoColor:    !colorsEnabled(os.Stderr),
		})
	}
	return out.Level(lvl).With().Timestamp().Logger(), nil
}

// colorsEnabled reports whether ANSI colors should be used on f, honoring
// NO_COLOR (https://no-color.org) and dumb terminals.
func colorsEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || strings.ToLower(os.Getenv("TERM")) == "dumb" {
		return false
	}
	return isTerminal(f)
}

// isTerminal reports whether f is attached to a TTY (character device).
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
