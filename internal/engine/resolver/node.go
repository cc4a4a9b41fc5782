package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autobahn/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/autobahn/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/autobahn/internal/core/ports"
)

// NodeID is the unique identifier for the resolution engine Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(log, tracer), nil
		},
	})
}
