// Package orchestrator reacts to package lifecycle events and dispatches the scaffold download.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

// State is the lifecycle state of an Orchestrator.
type State string

const (
	// StateIdle indicates no trigger package has been observed.
	StateIdle State = "Idle"
	// StateTriggered indicates the trigger package was installed or updated.
	StateTriggered State = "Triggered"
	// StateDispatched indicates the scaffold download has been handed to the task runner.
	StateDispatched State = "Dispatched"
)

// Orchestrator drives a single package manager run.
// It is not safe for concurrent use; events are applied in the order the host emits them.
type Orchestrator struct {
	project    *domain.Project
	locator    ports.PackageLocator
	dispatcher ports.Dispatcher
	telemetry  ports.Telemetry
	logger     ports.Logger

	state   State
	trigger *domain.Package
}

// New creates an Orchestrator in the Idle state.
func New(
	project *domain.Project,
	locator ports.PackageLocator,
	dispatcher ports.Dispatcher,
	tel ports.Telemetry,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		project:    project,
		locator:    locator,
		dispatcher: dispatcher,
		telemetry:  tel,
		logger:     logger,
		state:      StateIdle,
	}
}

// State returns the current state.
func (o *Orchestrator) State() State {
	return o.state
}

// Trigger returns the recorded trigger package, or nil while Idle.
func (o *Orchestrator) Trigger() *domain.Package {
	return o.trigger
}

// Observe records a completed package operation.
// Only the first install or update of the trigger package moves the orchestrator out of Idle.
func (o *Orchestrator) Observe(op domain.Operation) {
	if o.state != StateIdle {
		return
	}
	pkg := domain.ResultPackage(op)
	if !pkg.IsTrigger() {
		return
	}

	stored := *pkg
	o.trigger = &stored
	o.state = StateTriggered
}

// Complete handles the end of a package manager command.
// It dispatches once when a trigger was observed and is a no-op otherwise.
func (o *Orchestrator) Complete(ctx context.Context) error {
	if o.state != StateTriggered {
		return nil
	}
	o.state = StateDispatched
	return o.Scaffold(ctx)
}

// Apply routes a decoded event to Observe or Complete.
func (o *Orchestrator) Apply(ctx context.Context, ev domain.Event) error {
	switch e := ev.(type) {
	case domain.OperationEvent:
		o.Observe(e.Operation)
		return nil
	case domain.CommandEvent:
		return o.Complete(ctx)
	default:
		return nil
	}
}

// Scaffold runs the download procedure.
// Without a recorded trigger it looks up the installed trigger package.
func (o *Orchestrator) Scaffold(ctx context.Context) error {
	req, err := o.buildRequest()
	if err != nil {
		return err
	}

	inv := req.Invocation()
	ctx, vertex := o.telemetry.Record(ctx, inv.Command, ports.WithVertexID(req.Fingerprint()))

	msg := fmt.Sprintf("Downloading Drupal %s scaffold files into %s", req.Version, req.WebRoot)
	o.logger.Info(msg)
	vertex.Log(domain.LogLevelInfo, msg)

	if err := o.dispatcher.Dispatch(ctx, o.project, inv); err != nil {
		err = fail(domain.ErrDispatchFailure, err, "command", inv.Command)
		vertex.Log(domain.LogLevelError, err.Error())
		vertex.Complete(err)
		return err
	}

	vertex.Complete(nil)
	return nil
}

func (o *Orchestrator) buildRequest() (domain.DownloadRequest, error) {
	core, err := o.triggerPackage()
	if err != nil {
		return domain.DownloadRequest{}, err
	}

	corePath, err := o.locator.InstallPath(o.project, core)
	if err != nil {
		return domain.DownloadRequest{}, zerr.Wrap(err, "failed to resolve web root")
	}

	opts := domain.ResolveOptions(o.project.Extra)
	method, err := domain.ParseMethod(string(opts.Method))
	if err != nil {
		return domain.DownloadRequest{}, err
	}

	req := domain.DownloadRequest{
		Version:  core.Version,
		WebRoot:  domain.WebRoot(corePath),
		Excludes: opts.Excludes,
		Settings: opts.Settings,
		Method:   method,
	}

	switch method {
	case domain.MethodDrush:
		toolPath, err := o.toolPath()
		if err != nil {
			return domain.DownloadRequest{}, err
		}
		req.ToolPath = toolPath
	case domain.MethodHTTP:
		req.Source = opts.Source
	}

	return req, nil
}

func (o *Orchestrator) triggerPackage() (*domain.Package, error) {
	if o.trigger != nil {
		return o.trigger, nil
	}

	pkg, err := o.locator.FindInstalled(o.project, domain.TriggerPackageName, domain.AnyVersion)
	if err != nil {
		return nil, fail(domain.ErrMissingTriggerPackage, err, "package", domain.TriggerPackageName)
	}
	return pkg, nil
}

func (o *Orchestrator) toolPath() (string, error) {
	tool, err := o.locator.FindInstalled(o.project, domain.ToolPackageName, domain.AnyVersion)
	if err != nil {
		return "", fail(domain.ErrMissingAuxiliaryTool, err, "package", domain.ToolPackageName)
	}

	dir, err := o.locator.InstallPath(o.project, tool)
	if err != nil {
		return "", fail(domain.ErrMissingAuxiliaryTool, err, "package", domain.ToolPackageName)
	}
	return filepath.Join(strings.TrimRight(dir, string(filepath.Separator)), domain.ToolExecutable), nil
}

// fail tags cause with the error kind so callers can match either.
func fail(kind, cause error, key string, value any) error {
	return zerr.With(zerr.Wrap(fmt.Errorf("%w: %w", kind, cause), "failed to scaffold"), key, value)
}
