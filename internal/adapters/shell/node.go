package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/stampkit/stamp/internal/adapters/logger"
	"github.com/stampkit/stamp/internal/core/ports"
)

// NodeID is the unique identifier for the shell compiler Graft node.
const NodeID graft.ID = "adapter.shell"

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Compiler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(log), nil
		},
	})
}
