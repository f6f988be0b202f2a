// Package task dispatches scaffold downloads to the external task runner.
package task

import (
	"context"
	"strings"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultRunner is the task-runner command line used when none is configured.
const DefaultRunner = "vendor/bin/robo"

// Dispatcher implements ports.Dispatcher by running the task runner as a process.
type Dispatcher struct {
	executor ports.Executor
	runner   []string
}

// NewDispatcher creates a Dispatcher running invocations through runner.
// The runner is split on whitespace; an empty runner selects DefaultRunner.
func NewDispatcher(executor ports.Executor, runner string) *Dispatcher {
	argv := strings.Fields(runner)
	if len(argv) == 0 {
		argv = []string{DefaultRunner}
	}
	return &Dispatcher{
		executor: executor,
		runner:   argv,
	}
}

// Runner returns the runner command line.
func (d *Dispatcher) Runner() []string {
	return append([]string(nil), d.runner...)
}

// Dispatch runs the invocation in the project root.
func (d *Dispatcher) Dispatch(ctx context.Context, project *domain.Project, inv domain.TaskInvocation) error {
	args := make([]string, 0, len(d.runner)+len(inv.Args)+2*len(inv.Flags))
	args = append(args, d.runner[1:]...)
	args = append(args, inv.Argv()...)

	cmd := &domain.Command{
		Name:       d.runner[0],
		Args:       args,
		WorkingDir: project.Root,
	}

	if err := d.executor.Execute(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, "task runner failed"), "task", inv.Command)
	}
	return nil
}
