package fingerprint

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/stampkit/stamp/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprint adapter Graft node.
const NodeID graft.ID = "adapter.fingerprint"

func init() {
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewComputer(), nil
		},
	})
}
