// Package logger builds the zerolog logger used across periodical.
package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/roach88/periodical/internal/config"
)

// New returns a logger writing to w at the configured level.
// Format "console" uses zerolog.ConsoleWriter; "json" writes one JSON object
// per line.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	out := w
	switch cfg.Format {
	case "json":
	case "console", "":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Verbose lowers the level of l to debug.
func Verbose(l zerolog.Logger) zerolog.Logger {
	return l.Level(zerolog.DebugLevel)
}
