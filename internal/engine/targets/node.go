package targets

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mitchellh/go-homedir"
	"go.trai.ch/newsskill/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/newsskill/internal/core/domain"
	"go.trai.ch/newsskill/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the target resolver Graft node.
const NodeID graft.ID = "engine.targets"

func init() {
	graft.Register(graft.Node[ports.TargetResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.BundleNodeID},
		Run: func(ctx context.Context) (ports.TargetResolver, error) {
			bundle, err := graft.Dep[*domain.Bundle](ctx)
			if err != nil {
				return nil, err
			}

			home, err := homedir.Dir()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to determine home directory")
			}

			return NewResolver(home, ConfigHome(home), bundle.Name), nil
		},
	})
}
