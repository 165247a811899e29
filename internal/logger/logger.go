package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. Pretty output is meant for local runs; production emits JSON lines.
func New(pretty bool) zerolog.Logger {
	return NewWithWriter(os.Stdout, pretty)
}

func NewWithWriter(w io.Writer, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if pretty {
		output := zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05"}
		return zerolog.New(output).With().Timestamp().Caller().Logger()
	}

	return zerolog.New(w).With().Timestamp().Logger()
}

// Component tags every entry of a sub-logger with the emitting subsystem.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
