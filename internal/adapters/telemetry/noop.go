package telemetry

import (
	"context"
	"io"

	"github.com/stampkit/stamp/internal/core/ports"
)

// NoopTracer is a tracer that records nothing, used in quiet mode and tests.
type NoopTracer struct{}

// NewNoop creates a new NoopTracer.
func NewNoop() *NoopTracer {
	return &NoopTracer{}
}

// Record returns a vertex that discards everything.
func (t *NoopTracer) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (t *NoopTracer) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Complete(error)    {}
