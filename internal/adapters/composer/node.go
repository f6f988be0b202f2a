package composer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/adapters/logger"
	"go.trai.ch/scaffold/internal/core/ports"
)

// NodeID is the unique identifier for the package locator Graft node.
const NodeID graft.ID = "adapter.package_locator"

func init() {
	graft.Register(graft.Node[ports.PackageLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageLocator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(log), nil
		},
	})
}
