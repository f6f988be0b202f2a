package ports

import (
	"context"

	"go.trai.ch/scaffold/internal/core/domain"
)

// Dispatcher hands a scaffold download to the external task runner.
//
// The runner owns the file transfer and exclude filtering; the caller only
// sees success or failure.
//
//go:generate go run go.uber.org/mock/mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks
type Dispatcher interface {
	// Dispatch runs the invocation in the project root and blocks until it finishes.
	Dispatch(ctx context.Context, project *domain.Project, inv domain.TaskInvocation) error
}
