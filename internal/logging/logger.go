package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Fields carries structured context for a log line.
type Fields map[string]interface{}

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

func emit(ev *zerolog.Event, msg string, fields Fields) {
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	emit(logger.Info(), msg, fields)
}

// Error logs an error message and includes the error in the fields.
func Error(msg string, err error, fields Fields) {
	emit(logger.Error().Err(err), msg, fields)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	emit(logger.Fatal().Err(err), msg, fields)
}
