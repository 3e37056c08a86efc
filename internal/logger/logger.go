// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance. It is usable immediately at the
// default info level; call Init once at startup to configure it from
// the environment.
var Log = logrus.New()

// Init configures the global logger from the environment.
//
// LOG_LEVEL selects the level ("debug", "info", ...; default "info").
// LOG_FORMAT=json switches to JSON output for log collection; anything
// else keeps the human-readable text formatter.
func Init(out io.Writer) {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)
}
