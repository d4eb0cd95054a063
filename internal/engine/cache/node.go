package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/stampkit/stamp/internal/adapters/fingerprint"
	"github.com/stampkit/stamp/internal/adapters/logger"
	"github.com/stampkit/stamp/internal/adapters/trailer"
	"github.com/stampkit/stamp/internal/core/ports"
)

const (
	// ValidatorNodeID is the unique identifier for the Validator Graft node.
	ValidatorNodeID graft.ID = "engine.cache.validator"
	// WriterNodeID is the unique identifier for the Writer Graft node.
	WriterNodeID graft.ID = "engine.cache.writer"
)

func init() {
	graft.Register(graft.Node[*Validator]{
		ID:        ValidatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fingerprint.NodeID, trailer.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Validator, error) {
			fp, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			ts, err := graft.Dep[ports.TrailerStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewValidator(fp, ts, log), nil
		},
	})

	graft.Register(graft.Node[*Writer]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fingerprint.NodeID, trailer.NodeID},
		Run: func(ctx context.Context) (*Writer, error) {
			fp, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			ts, err := graft.Dep[ports.TrailerStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(fp, ts), nil
		},
	})
}
