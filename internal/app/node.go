package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/adapters/composer"           //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/task"               //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/core/ports"
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
			composer.NodeID,
			task.NodeID,
			shell.NodeID,
			progrock.NodeID,
			logger.NodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.PackageLocator](ctx)
	if err != nil {
		return nil, err
	}

	dispatcher, err := graft.Dep[ports.Dispatcher](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, locator, dispatcher, executor, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
