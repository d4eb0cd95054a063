package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/stampkit/stamp/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/stampkit/stamp/internal/adapters/envkey"
	"github.com/stampkit/stamp/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/stampkit/stamp/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/stampkit/stamp/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/stampkit/stamp/internal/core/ports"
	"github.com/stampkit/stamp/internal/engine/cache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			envkey.NodeID,
			cache.ValidatorNodeID,
			cache.WriterNodeID,
			shell.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
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
			return &Components{App: application, Logger: log, Tracer: tracer}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configs, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	collector, err := graft.Dep[*envkey.Collector](ctx)
	if err != nil {
		return nil, err
	}
	validator, err := graft.Dep[*cache.Validator](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[*cache.Writer](ctx)
	if err != nil {
		return nil, err
	}
	compiler, err := graft.Dep[ports.Compiler](ctx)
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
	return New(configs, collector, validator, writer, compiler, log, tracer), nil
}
