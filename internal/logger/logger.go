// Package logger builds the CLI's zerolog logger.
package logger

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New creates a zerolog.Logger with the specified level and JSON
// output on stderr, leaving stdout free for the report itself. If the
// level string is invalid, it defaults to info.
func New(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// NewRunID generates a UUID that correlates every log event of one
// batch run.
func NewRunID() string {
	return uuid.New().String()
}
