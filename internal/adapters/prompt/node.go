package prompt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autobahn/internal/core/ports"
)

// NodeID is the unique identifier for the chooser Graft node.
const NodeID graft.ID = "adapter.prompt"

func init() {
	graft.Register(graft.Node[ports.Chooser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Chooser, error) {
			return New(), nil
		},
	})
}
