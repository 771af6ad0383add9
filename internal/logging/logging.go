// SPDX-License-Identifier: EPL-2.0

// Package logging builds the zerolog logger used by the namhost command.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/ik5/namhost/internal/config"
)

// New returns a logger writing to w at cfg.Level. An unknown level falls
// back to info. Pretty selects the human readable console format.
func New(cfg config.Log, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
