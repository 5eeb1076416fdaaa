// Package logging builds the process logger. Call sites log failures the
// user already sees as notifications, so the default level keeps them quiet
// unless --verbose or log_level asks for more.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w at the given level. Unknown level
// names fall back to warn.
func New(w io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)
	return log
}

// Discard returns a logger that drops everything. Tests and library callers
// that do not care about logs use it as the default.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
