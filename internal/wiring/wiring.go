// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/stampkit/stamp/internal/adapters/config"
	_ "github.com/stampkit/stamp/internal/adapters/envkey"
	_ "github.com/stampkit/stamp/internal/adapters/fingerprint"
	_ "github.com/stampkit/stamp/internal/adapters/logger"
	_ "github.com/stampkit/stamp/internal/adapters/shell"
	_ "github.com/stampkit/stamp/internal/adapters/telemetry"
	_ "github.com/stampkit/stamp/internal/adapters/trailer"
	// Register app and engine nodes.
	_ "github.com/stampkit/stamp/internal/app"
	_ "github.com/stampkit/stamp/internal/engine/cache"
)
