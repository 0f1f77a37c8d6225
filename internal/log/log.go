// Package log configures the application logger.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/focusdeck-io/focusdeck/internal/config"
)

// Setup directs the global logger at ~/.focusdeck/logs/focusdeck.log.
// The TUI owns the terminal, so logs never go to stdout; if the log file
// cannot be opened the logger is silenced instead of failing startup.
func Setup(debug bool) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := config.EnsureGlobalLogsDir(); err != nil {
		logrus.SetOutput(io.Discard)
		return
	}
	path, err := config.GlobalLogFile()
	if err != nil {
		logrus.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return
	}
	logrus.SetOutput(f)
}

// New returns a logger entry tagged with the originating component.
func New(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}
