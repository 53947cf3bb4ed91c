package ports

import "go.trai.ch/newsskill/internal/core/domain"

// Reporter renders human-readable output. It never influences decisions.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	DeployProgress

	// Usage prints the help text. table lists the destinations of every selector.
	Usage(bundle *domain.Bundle, table []domain.SelectorUsage)
	// UsageError prints err with an "[error]" prefix followed by the help text.
	UsageError(err error, bundle *domain.Bundle, table []domain.SelectorUsage)
	// Destination announces the deployment of one target.
	Destination(target domain.TargetDirectory, dryRun bool)
	// Summary prints the closing block after every target was handled.
	Summary(bundle *domain.Bundle, targets []domain.TargetDirectory, dryRun bool)
}
