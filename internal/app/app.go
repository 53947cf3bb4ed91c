// Package app implements the application layer for the skill installer.
package app

import (
	"context"
	"errors"

	"go.trai.ch/newsskill/internal/core/domain"
	"go.trai.ch/newsskill/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	bundle    *domain.Bundle
	resolver  ports.TargetResolver
	deployer  ports.Deployer
	reporter  ports.Reporter
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	bundle *domain.Bundle,
	resolver ports.TargetResolver,
	deployer ports.Deployer,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
) *App {
	return &App{
		bundle:    bundle,
		resolver:  resolver,
		deployer:  deployer,
		reporter:  reporter,
		telemetry: telemetry,
	}
}

// WithReporter replaces the reporter used for all output.
func (a *App) WithReporter(reporter ports.Reporter) *App {
	a.reporter = reporter
	return a
}

// Run executes an install request.
// Destinations are processed sequentially in resolver order; the first failure stops the run.
func (a *App) Run(ctx context.Context, req domain.InstallRequest) error {
	// 1. Help supersedes everything else
	if req.Help {
		a.reporter.Usage(a.bundle, a.resolver.Table())
		return nil
	}

	if req.Command != domain.CommandInstall {
		return domain.NewUsageError("unsupported command: %s", req.Command)
	}

	// 2. Resolve destinations
	targets, err := a.resolver.Resolve(req.Target, req.CustomDir)
	if err != nil {
		return errors.Join(domain.ErrInstallFailed, err)
	}

	// 3. Deploy into each destination
	for _, target := range targets {
		if err := a.deploy(ctx, target, req.DryRun); err != nil {
			return errors.Join(domain.ErrInstallFailed, zerr.With(err, "target", target.Path))
		}
	}

	// 4. Guidance
	a.reporter.Summary(a.bundle, targets, req.DryRun)
	return nil
}

func (a *App) deploy(ctx context.Context, target domain.TargetDirectory, dryRun bool) error {
	a.reporter.Destination(target, dryRun)

	name := "install " + target.Path
	if dryRun {
		name = "preview " + target.Path
	}
	vertex := a.telemetry.Record(ctx, name)

	err := a.deployer.Deploy(target, a.bundle.Items, dryRun, &vertexProgress{
		DeployProgress: a.reporter,
		vertex:         vertex,
	})
	vertex.Complete(err)
	return err
}

// ReportUsageError prints a usage error followed by the help text.
func (a *App) ReportUsageError(err error) {
	a.reporter.UsageError(err, a.bundle, a.resolver.Table())
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	if err := a.telemetry.Close(); err != nil {
		return zerr.Wrap(err, "failed to close telemetry")
	}
	return nil
}

// vertexProgress forwards deployment events to the reporter and mirrors writes into the vertex log.
type vertexProgress struct {
	ports.DeployProgress
	vertex ports.Vertex
}

func (p *vertexProgress) ItemCopied(item domain.SourceItem, dest string) {
	p.DeployProgress.ItemCopied(item, dest)
	p.vertex.Log("copied " + string(item))
}

func (p *vertexProgress) Replacing(target domain.TargetDirectory, dryRun bool) {
	p.DeployProgress.Replacing(target, dryRun)
	if !dryRun {
		p.vertex.Log("replacing existing installation")
	}
}
