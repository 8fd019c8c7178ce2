package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetLoggerLogLevel(t *testing.T) {
	assert := assert.New(t)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		logLevel string
		expected string
	}{
		{
			logLevel: "info",
			expected: "info",
		},
		{
			logLevel: "warn",
			expected: "warn",
		},
		{
			logLevel: "debug",
			expected: "debug",
		},
		{
			logLevel: "error",
			expected: "error",
		},
		{
			logLevel: "fatal",
			expected: "fatal",
		},
		{
			logLevel: "trace",
			expected: "trace",
		},
		{
			logLevel: "panic",
			expected: "panic",
		},
		{
			logLevel: " DEBUG ",
			expected: "debug",
		},
		{
			logLevel: "plop",
			expected: "info",
		},
	}

	for _, tc := range tests {
		t.Setenv(EnvLogLevel, tc.logLevel)
		log.Logger = *NewLogger()
		assert.Equal(tc.expected, zerolog.GlobalLevel().String())

		t.Setenv(EnvLogFormatJSON, "true")
		log.Logger = *NewLogger()
		assert.Equal(tc.expected, zerolog.GlobalLevel().String())
		t.Setenv(EnvLogFormatJSON, "")
	}
}

func TestLogger_json(t *testing.T) {
	assert := assert.New(t)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvLogFormatJSON, "true")

	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf)
	l.Info().Str("runId", "abc").Msg("converged")

	var line map[string]interface{}
	assert.Nil(json.Unmarshal(buf.Bytes(), &line))
	assert.Equal("converged", line["message"])
	assert.Equal("abc", line["runId"])
	assert.Equal("info", line["level"])
}

func TestLogger_console(t *testing.T) {
	assert := assert.New(t)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvLogFormatJSON, "")

	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf)
	l.Info().Msg("Testing logger")
	l.Debug().Msg("hidden")

	assert.Contains(buf.String(), "| INFO |")
	assert.Contains(buf.String(), "Testing logger")
	assert.NotContains(buf.String(), "hidden")
}
