package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer records the progress of build steps.
type Tracer interface {
	// Record starts a new vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes any buffered output.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns the writer for the unit's output stream.
	Stdout() io.Writer
	// Complete marks the vertex finished; a non-nil err marks it failed.
	Complete(err error)
}
