package ports

import "go.trai.ch/newsskill/internal/core/domain"

// ConfigLoader defines the interface for loading the bundle manifest.
type ConfigLoader interface {
	// Load reads and validates the manifest describing the bundle.
	Load() (*domain.Bundle, error)
}
