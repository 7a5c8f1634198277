package sdk

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger creates a zerolog logger writing to w at the named level
// (debug|info|warn|error), as JSON or in console format.
func NewLogger(w io.Writer, level string, jsonFormat bool) zerolog.Logger {
	var zLevel zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		zLevel = zerolog.DebugLevel
	case "info":
		zLevel = zerolog.InfoLevel
	case "warn":
		zLevel = zerolog.WarnLevel
	case "error":
		zLevel = zerolog.ErrorLevel
	default:
		zLevel = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if jsonFormat {
		logger = zerolog.New(w)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true})
	}

	return logger.Level(zLevel).With().Timestamp().Logger()
}
