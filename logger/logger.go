package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// EnvLogLevel is the environment variable used to set the log level
	EnvLogLevel = "ITERVOTE_LOG_LEVEL"

	// EnvLogFormatJSON is the environment variable that switches
	// the output to json when not empty
	EnvLogFormatJSON = "ITERVOTE_LOG_FORMAT_JSON"
)

// NewLogger instantiate zerolog configuration writing to stdout
func NewLogger() *zerolog.Logger {
	return NewLoggerWithWriter(os.Stdout)
}

// NewLoggerWithWriter instantiate zerolog configuration writing to w.
// Level and format are read from environment variables
func NewLoggerWithWriter(w io.Writer) *zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(os.Getenv(EnvLogLevel)))

	var logger zerolog.Logger
	if strings.TrimSpace(os.Getenv(EnvLogFormatJSON)) == "" {
		output := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
		output.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %s |", i))
		}
		output.FormatMessage = func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		}

		logger = zerolog.New(output).With().Timestamp().Caller().Logger()
	} else {
		logger = zerolog.New(w).With().Timestamp().Caller().Logger()
	}
	return &logger
}

// parseLevel maps the provided level name to a zerolog level.
// Unknown or empty values fall back to info
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "panic":
		return zerolog.PanicLevel
	case "fatal":
		return zerolog.FatalLevel
	case "error":
		return zerolog.ErrorLevel
	case "warn":
		return zerolog.WarnLevel
	case "debug":
		return zerolog.DebugLevel
	case "trace":
		return zerolog.TraceLevel
	case "disabled":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}
