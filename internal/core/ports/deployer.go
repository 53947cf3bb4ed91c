package ports

import "go.trai.ch/newsskill/internal/core/domain"

// Deployer places the bundle into a single target directory.
//
//go:generate mockgen -source=deployer.go -destination=mocks/mock_deployer.go -package=mocks
type Deployer interface {
	// Deploy previews (dryRun) or performs the copy of items into target.
	// In real mode the target is removed and recreated before copying, so a failure
	// part-way leaves it partially populated. Errors are never retried.
	Deploy(target domain.TargetDirectory, items []domain.SourceItem, dryRun bool, progress DeployProgress) error
}

// DeployProgress receives deployment events for a single target, in order.
type DeployProgress interface {
	// ItemPlanned is called for every item in dry-run mode.
	ItemPlanned(item domain.SourceItem, dest string)
	// Replacing is called when the target already holds a previous installation.
	Replacing(target domain.TargetDirectory, dryRun bool)
	// ItemCopied is called after an item has been copied.
	ItemCopied(item domain.SourceItem, dest string)
	// Verified is called once all copied files matched their sources.
	Verified(target domain.TargetDirectory, files int)
}
