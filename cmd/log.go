package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the application logger. It writes to stderr so that it never mixes
// with the command results.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// InitLogger sets the log level from the -log-level flag. It must be called
// after the flags are parsed.
func InitLogger() {
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		Log.WithError(err).Warnf("invalid log level %q, using warning", *logLevel)
		level = logrus.WarnLevel
	}
	Log.SetLevel(level)
	// the assistant logs through the standard logger.
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
}
