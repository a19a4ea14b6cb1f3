package coordinator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crcsum/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crcsum/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/crcsum/internal/core/ports"
)

// NodeID is the unique identifier for the coordinator Graft node.
const NodeID graft.ID = "engine.coordinator"

func init() {
	graft.Register(graft.Node[*Coordinator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ChecksummerNodeID,
			fs.RenamerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Coordinator, error) {
			checksummer, err := graft.Dep[ports.Checksummer](ctx)
			if err != nil {
				return nil, err
			}

			renamer, err := graft.Dep[ports.Renamer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewCoordinator(checksummer, renamer, log), nil
		},
	})
}
