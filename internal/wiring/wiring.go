// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crcsum/internal/adapters/config"
	_ "go.trai.ch/crcsum/internal/adapters/fs"
	_ "go.trai.ch/crcsum/internal/adapters/linear"
	_ "go.trai.ch/crcsum/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/crcsum/internal/app"
	_ "go.trai.ch/crcsum/internal/engine/coordinator"
)
