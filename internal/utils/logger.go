package utils

import (
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/logfmt"
	"github.com/apex/log/handlers/text"
)

// NewLogger builds a logger writing to output in the given format: "json",
// "text" or anything else for logfmt. debug forces the debug level.
func NewLogger(level log.Level, debug bool, output io.Writer, format string) *log.Logger {
	logger := &log.Logger{Level: level}
	if debug {
		logger.Level = log.DebugLevel
	}

	switch format {
	case "json":
		logger.Handler = json.New(output)
	case "text":
		logger.Handler = text.New(output)
	default:
		logger.Handler = logfmt.New(output)
	}

	return logger
}
