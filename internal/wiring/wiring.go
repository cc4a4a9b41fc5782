// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/autobahn/internal/adapters/config"
	_ "go.trai.ch/autobahn/internal/adapters/fhs"
	_ "go.trai.ch/autobahn/internal/adapters/ldd"
	_ "go.trai.ch/autobahn/internal/adapters/logger"
	_ "go.trai.ch/autobahn/internal/adapters/override"
	_ "go.trai.ch/autobahn/internal/adapters/prompt"
	_ "go.trai.ch/autobahn/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/autobahn/internal/app"
	_ "go.trai.ch/autobahn/internal/engine/resolver"
)
