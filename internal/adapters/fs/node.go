package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/newsskill"
	"go.trai.ch/newsskill/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
	VerifierNodeID graft.ID = "adapter.fs.verifier"
	DeployerNodeID graft.ID = "adapter.fs.deployer"
)

func init() {
	// Walker Node (Concrete implementation needed by Verifier)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	// Verifier Node
	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, HasherNodeID},
		Run: func(ctx context.Context) (ports.Verifier, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewVerifier(walker, hasher), nil
		},
	})

	// Deployer Node reads from the embedded distribution root.
	graft.Register(graft.Node[ports.Deployer]{
		ID:        DeployerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{VerifierNodeID},
		Run: func(ctx context.Context) (ports.Deployer, error) {
			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			return NewDeployer(newsskill.Source(), verifier), nil
		},
	})
}
