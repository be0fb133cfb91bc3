// Package log provides a thin, per-component wrapper over logrus. A
// *logrus.Entry already tags every line with its component field, so the
// rest of the tree only ever depends on the Logger interface below, never
// on logrus directly.
package log

import "github.com/sirupsen/logrus"

// Logger is the narrow logging surface every component takes. There is no
// Fatal here on purpose: load-time failures are returned as errors, not
// logged-and-exited, so the core stays embeddable in tests.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	entry *logrus.Entry
}

// New returns a Logger scoped to component, tagging every entry it emits
// with a "component" field the way the reference bus package does.
func New(component string) Logger {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableQuote:     true,
	}
	return &logger{entry: l.WithField("component", component)}
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}
