package ports

import "go.trai.ch/newsskill/internal/core/domain"

// TargetResolver turns an install request into destination directories.
//
//go:generate mockgen -source=target_resolver.go -destination=mocks/mock_target_resolver.go -package=mocks
type TargetResolver interface {
	// Resolve returns the ordered destinations for a selector or custom directory.
	Resolve(selector domain.TargetSelector, customDir string) ([]domain.TargetDirectory, error)
	// Table lists the destinations of every selector for help output.
	Table() []domain.SelectorUsage
}
