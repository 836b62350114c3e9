// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/protonrun/internal/adapters/config"
	_ "go.trai.ch/protonrun/internal/adapters/fs"
	_ "go.trai.ch/protonrun/internal/adapters/logger"
	_ "go.trai.ch/protonrun/internal/adapters/shell"
	_ "go.trai.ch/protonrun/internal/adapters/vdf"
	// Register app and engine nodes.
	_ "go.trai.ch/protonrun/internal/app"
	_ "go.trai.ch/protonrun/internal/engine/resolver"
)
