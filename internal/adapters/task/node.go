package task

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/adapters/shell"
	"go.trai.ch/scaffold/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "adapter.dispatcher"

func init() {
	graft.Register(graft.Node[ports.Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Dispatcher, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewDispatcher(executor, DefaultRunner), nil
		},
	})
}
