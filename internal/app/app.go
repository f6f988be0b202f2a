// Package app implements the application layer for scaffold.
package app

import (
	"context"
	"iter"

	"go.trai.ch/scaffold/internal/adapters/task" //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/scaffold/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	locator      ports.PackageLocator
	dispatcher   ports.Dispatcher
	executor     ports.Executor
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	locator ports.PackageLocator,
	dispatcher ports.Dispatcher,
	executor ports.Executor,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		locator:      locator,
		dispatcher:   dispatcher,
		executor:     executor,
		telemetry:    telemetry,
		logger:       log,
	}
}

// WithRunner replaces the task runner command line used for downloads.
// An empty runner keeps the current dispatcher.
func (a *App) WithRunner(runner string) *App {
	if runner != "" {
		a.dispatcher = task.NewDispatcher(a.executor, runner)
	}
	return a
}

// Process downloads the scaffold files for the drupal/core version installed in dir.
func (a *App) Process(ctx context.Context, dir string) error {
	project, err := a.configLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	return a.newOrchestrator(project).Scaffold(ctx)
}

// HandleEvents replays a lifecycle event stream against a fresh orchestrator.
// It returns the first decode or scaffold error.
func (a *App) HandleEvents(ctx context.Context, dir string, events iter.Seq2[domain.Event, error]) error {
	project, err := a.configLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	orch := a.newOrchestrator(project)
	for ev, err := range events {
		if err != nil {
			return zerr.Wrap(err, "failed to read events")
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := orch.Apply(ctx, ev); err != nil {
			return err
		}
	}

	if orch.State() == orchestrator.StateIdle {
		a.logger.Info("drupal/core was not installed or updated, skipping scaffold")
	}
	return nil
}

// Options returns the effective scaffold options for the project in dir.
func (a *App) Options(dir string) (domain.ScaffoldOptions, error) {
	project, err := a.configLoader.Load(dir)
	if err != nil {
		return domain.ScaffoldOptions{}, zerr.Wrap(err, "failed to load configuration")
	}
	return domain.ResolveOptions(project.Extra), nil
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) newOrchestrator(project *domain.Project) *orchestrator.Orchestrator {
	return orchestrator.New(project, a.locator, a.dispatcher, a.telemetry, a.logger)
}
