// Package slog adapts a log/slog logger to negabinary.Tracer.
package slog

import (
	"context"
	stdslog "log/slog"

	"github.com/calebcase/negabinary"
)

var _ negabinary.Tracer = Tracer{}

type Tracer struct{ L *stdslog.Logger }

func (s Tracer) Trace(msg string, f negabinary.Fields) {
	s.L.LogAttrs(context.Background(), stdslog.LevelDebug, msg, attrs(f)...)
}

func attrs(f negabinary.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, stdslog.Any(k, v))
	}
	return out
}
