// Package ui provides console logging and table rendering for the
// hypercube command line.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
)

// LogLevels lists the accepted --loglevel values, most verbose first.
var LogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// ParseLevel maps a --loglevel value to a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, known := range LogLevels {
		if s == known {
			return zerolog.ParseLevel(s)
		}
	}

	return zerolog.NoLevel, fmt.Errorf("invalid log level %q - use one of: %s", s, strings.Join(LogLevels, ", "))
}

// Stderr returns a colour-capable standard error stream.
func Stderr() io.Writer {
	return colorable.NewColorableStderr()
}

// NewLogger returns a console logger writing to w at the given level.
// Colour is only emitted when color is true.
func NewLogger(w io.Writer, level string, color bool) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05.000",
		NoColor:    !color,
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
