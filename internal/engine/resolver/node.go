package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	fsadapter "go.trai.ch/protonrun/internal/adapters/fs"
	"go.trai.ch/protonrun/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/protonrun/internal/adapters/vdf"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/protonrun/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.EnvironmentResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			vdf.NodeID,
			fsadapter.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.EnvironmentResolver, error) {
			loader, err := graft.Dep[ports.DocumentLoader](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(loader, fsys, log), nil
		},
	})
}
