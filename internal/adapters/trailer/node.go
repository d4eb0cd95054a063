package trailer

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/stampkit/stamp/internal/core/ports"
)

// NodeID is the unique identifier for the trailer adapter Graft node.
const NodeID graft.ID = "adapter.trailer"

func init() {
	graft.Register(graft.Node[ports.TrailerStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TrailerStore, error) {
			return NewCodec(), nil
		},
	})
}
