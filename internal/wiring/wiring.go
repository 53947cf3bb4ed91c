// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/newsskill/internal/adapters/config"
	_ "go.trai.ch/newsskill/internal/adapters/fs"
	_ "go.trai.ch/newsskill/internal/adapters/logger"
	_ "go.trai.ch/newsskill/internal/adapters/report"
	_ "go.trai.ch/newsskill/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/newsskill/internal/app"
	_ "go.trai.ch/newsskill/internal/engine/targets"
)
