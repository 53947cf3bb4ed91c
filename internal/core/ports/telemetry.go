package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of deployments.
type Telemetry interface {
	// Record starts a vertex named name.
	Record(ctx context.Context, name string) Vertex
	// Close flushes the recording session.
	Close() error
}

// Vertex represents a unit of work.
type Vertex interface {
	// Log attaches a line of output to the vertex.
	Log(msg string)
	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
}
