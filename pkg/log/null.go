package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewNullLogger returns a Logger whose entries are discarded — useful for
// tests and embedders that don't want console output by default.
func NewNullLogger() Logger {
	l := logrus.New()
	l.Out = io.Discard
	return &logger{entry: l.WithField("component", "null")}
}
