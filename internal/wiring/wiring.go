// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scaffold/internal/adapters/composer"
	_ "go.trai.ch/scaffold/internal/adapters/config"
	_ "go.trai.ch/scaffold/internal/adapters/logger"
	_ "go.trai.ch/scaffold/internal/adapters/shell"
	_ "go.trai.ch/scaffold/internal/adapters/task"
	_ "go.trai.ch/scaffold/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/scaffold/internal/app"
)
