// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/scaffold/internal/core/domain"
)

// Executor defines the interface for running processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the given command and waits for it to exit.
	//
	// Output is streamed to the logger and to the Vertex carried by ctx, if any.
	//
	// It returns an error if the process cannot be started or exits non-zero.
	Execute(ctx context.Context, cmd *domain.Command) error
}
