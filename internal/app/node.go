package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autobahn/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/autobahn/internal/adapters/fhs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/autobahn/internal/adapters/ldd"       //nolint:depguard // Wired in app layer
	"go.trai.ch/autobahn/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/autobahn/internal/adapters/override"  //nolint:depguard // Wired in app layer
	"go.trai.ch/autobahn/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/autobahn/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/autobahn/internal/core/ports"
	"go.trai.ch/autobahn/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			ldd.NodeID,
			override.NodeID,
			prompt.NodeID,
			fhs.EmitterNodeID,
			fhs.WriterNodeID,
			resolver.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	scanners, err := graft.Dep[ports.ScannerFactory](ctx)
	if err != nil {
		return nil, err
	}

	locators, err := graft.Dep[ports.LocatorFactory](ctx)
	if err != nil {
		return nil, err
	}

	chooser, err := graft.Dep[ports.Chooser](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.Emitter](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ScriptWriter](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*resolver.Engine](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, tracer, scanners, locators, chooser, emitter, writer, engine), nil
}
