package ldd

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/autobahn/internal/core/ports"
)

// NodeID is the unique identifier for the scanner factory Graft node.
const NodeID graft.ID = "adapter.ldd"

func init() {
	graft.Register(graft.Node[ports.ScannerFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScannerFactory, error) {
			return func(cfg domain.Config) ports.Scanner {
				return New(cfg.ScannerCommand)
			}, nil
		},
	})
}
