package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var base = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the process-wide logger. Development gets a readable console writer,
// every other environment logs JSON.
func Init(env, level string) {
	var w io.Writer = os.Stdout
	if env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	base = zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Caller().Logger()
	log.Logger = base
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func Info() *zerolog.Event  { return base.Info() }
func Error() *zerolog.Event { return base.Error() }
func Debug() *zerolog.Event { return base.Debug() }
func Warn() *zerolog.Event  { return base.Warn() }
func Fatal() *zerolog.Event { return base.Fatal() }

// With returns a sub-logger carrying a component name, used by long-lived workers.
func With(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// SetOutput redirects logs, mostly for tests.
func SetOutput(w io.Writer) {
	base = base.Output(w)
}
