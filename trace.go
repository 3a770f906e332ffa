package negabinary

// Fields is a minimal structured field map for trace output.
type Fields map[string]any

// Tracer receives intermediate values from multi step operations. It is
// diagnostic only; nothing it is given affects results.
type Tracer interface {
	Trace(msg string, f Fields)
}

// NopTracer discards everything.
type NopTracer struct{}

func (NopTracer) Trace(string, Fields) {}
