package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Init must run before anything logs.
var Log = logrus.New()

// Init resets Log to the service defaults: JSON to stdout at info level.
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetLevel(logrus.InfoLevel)
	Log.SetFormatter(jsonFormatter())
}

// Configure applies the level and format from configuration. Unknown values
// keep the current setting and are reported as a warning.
func Configure(level, format string) {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			Log.WithField("level", level).Warn("Unknown log level, keeping current level")
		} else {
			Log.SetLevel(lvl)
		}
	}

	switch strings.ToLower(format) {
	case "", "json":
		Log.SetFormatter(jsonFormatter())
	case "text":
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		Log.WithField("format", format).Warn("Unknown log format, keeping current format")
	}
}

func jsonFormatter() *logrus.JSONFormatter {
	return &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}
}
