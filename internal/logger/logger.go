// Package logger builds the shell's diagnostic logger. The terminal is
// reserved for user-visible shell output, so diagnostics always go to a
// file; with no file configured the logger is disabled.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

type Config struct {
	File  string
	Level string
}

// New returns a logger writing JSON lines to cfg.File. An unknown level
// falls back to info.
func New(cfg Config) (zerolog.Logger, error) {
	if cfg.File == "" {
		return zerolog.Nop(), nil
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	f, err := os.OpenFile(cfg.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(f).Level(level).With().Timestamp().Logger(), nil
}
