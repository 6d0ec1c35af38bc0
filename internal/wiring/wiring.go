// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jitsnap/internal/adapters/cas"
	_ "go.trai.ch/jitsnap/internal/adapters/config"
	_ "go.trai.ch/jitsnap/internal/adapters/esbuild"
	_ "go.trai.ch/jitsnap/internal/adapters/fs"
	_ "go.trai.ch/jitsnap/internal/adapters/logger"
	_ "go.trai.ch/jitsnap/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/jitsnap/internal/app"
	_ "go.trai.ch/jitsnap/internal/engine/snapshot"
)
