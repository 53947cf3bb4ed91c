package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/newsskill"
	"go.trai.ch/newsskill/internal/core/domain"
	"go.trai.ch/newsskill/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the manifest loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// BundleNodeID is the unique identifier for the loaded bundle Graft node.
	BundleNodeID graft.ID = "adapter.bundle"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(newsskill.Manifest(), newsskill.ManifestFile), nil
		},
	})

	graft.Register(graft.Node[*domain.Bundle]{
		ID:        BundleNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Bundle, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load()
		},
	})
}
