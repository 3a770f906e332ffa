// Package logrus adapts a logrus entry to negabinary.Tracer.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/calebcase/negabinary"
)

var _ negabinary.Tracer = LogrusTracer{}

// LogrusTracer logs trace steps at debug level.
type LogrusTracer struct{ E *logrus.Entry }

func (l LogrusTracer) Trace(msg string, f negabinary.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
