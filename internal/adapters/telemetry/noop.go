// Package telemetry provides telemetry adapters that do not depend on a recording backend.
package telemetry

import (
	"context"

	"go.trai.ch/newsskill/internal/core/ports"
)

var _ ports.Telemetry = (*NoOp)(nil)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(_ context.Context, _ string) ports.Vertex {
	return NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Log does nothing.
func (NoOpVertex) Log(_ string) {}

// Complete does nothing.
func (NoOpVertex) Complete(_ error) {}
