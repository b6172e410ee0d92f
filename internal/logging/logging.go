// Package logging sets up the process logger. The TUI owns the terminal,
// so logs go to a file.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Setup opens path for appending and returns a logger writing to it. An
// unopenable path yields a silent logger rather than a startup failure.
func Setup(path string, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var w io.Writer = io.Discard
	if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		w = f
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
