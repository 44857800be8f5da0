// Package logging builds the zerolog loggers used by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a console logger writing to stderr and installs it as the
// global zerolog logger.
func New(app string) zerolog.Logger {
	logger := NewTo(os.Stderr, app)
	log.Logger = logger
	return logger
}

// NewTo returns a console logger writing to w, tagged with app.
func NewTo(w io.Writer, app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", app).Logger()
}

// WithLevel returns logger filtered at the named level ("debug", "info", ...).
func WithLevel(logger zerolog.Logger, level string) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return logger, fmt.Errorf("parse log level: %w", err)
	}
	return logger.Level(parsed), nil
}
