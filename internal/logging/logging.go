// Package logging provides the leveled logger shared by all reposeed components.
// Verbosity is selected once from the -v flag count and the resulting Logger is
// injected into each component rather than mutated on a global.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is a leveled logger with five ordered severities. Error is always
// emitted; each additional -v enables the next level down.
type Logger interface {
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Tracef(format string, args ...interface{})
}

// levels maps the -v count (0-4) onto logrus severities.
var levels = []logrus.Level{
	logrus.ErrorLevel,
	logrus.WarnLevel,
	logrus.InfoLevel,
	logrus.DebugLevel,
	logrus.TraceLevel,
}

// New returns a Logger writing to out at the severity selected by verbosity.
// Counts above 4 are clamped to trace.
func New(out io.Writer, verbosity int) Logger {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(levels) {
		verbosity = len(levels) - 1
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(levels[verbosity])
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	return log
}
