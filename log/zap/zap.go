// Package zap adapts a zap logger to negabinary.Tracer.
package zap

import (
	"go.uber.org/zap"

	"github.com/calebcase/negabinary"
)

var _ negabinary.Tracer = ZapTracer{}

// ZapTracer logs trace steps at debug level.
type ZapTracer struct{ L *zap.Logger }

func (z ZapTracer) Trace(msg string, f negabinary.Fields) { z.L.Debug(msg, zf(f)...) }

func zf(f negabinary.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
