package override

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autobahn/internal/adapters/nixlocate" //nolint:depguard // Decorates the index locator
	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/autobahn/internal/core/ports"
)

// NodeID is the unique identifier for the locator factory Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.LocatorFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LocatorFactory, error) {
			return func(cfg domain.Config) ports.Locator {
				return New(cfg.Overrides, nixlocate.New(cfg.LocatorCommand))
			}, nil
		},
	})
}
