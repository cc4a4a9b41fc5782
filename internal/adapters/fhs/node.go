package fhs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autobahn/internal/core/ports"
)

const (
	// EmitterNodeID is the unique identifier for the expression emitter Graft node.
	EmitterNodeID graft.ID = "adapter.fhs.emitter"
	// WriterNodeID is the unique identifier for the launcher writer Graft node.
	WriterNodeID graft.ID = "adapter.fhs.writer"
)

func init() {
	graft.Register(graft.Node[ports.Emitter]{
		ID:        EmitterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Emitter, error) {
			return NewEmitter(), nil
		},
	})

	graft.Register(graft.Node[ports.ScriptWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScriptWriter, error) {
			return NewScriptWriter(), nil
		},
	})
}
