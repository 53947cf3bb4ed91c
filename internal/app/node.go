package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/newsskill/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/newsskill/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/newsskill/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/newsskill/internal/adapters/report"             //nolint:depguard // Wired in app layer
	"go.trai.ch/newsskill/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/newsskill/internal/core/domain"
	"go.trai.ch/newsskill/internal/core/ports"
	"go.trai.ch/newsskill/internal/engine/targets"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.BundleNodeID,
			targets.NodeID,
			fs.DeployerNodeID,
			report.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	bundle, err := graft.Dep[*domain.Bundle](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.TargetResolver](ctx)
	if err != nil {
		return nil, err
	}

	deployer, err := graft.Dep[ports.Deployer](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(bundle, resolver, deployer, reporter, telemetry), nil
}
