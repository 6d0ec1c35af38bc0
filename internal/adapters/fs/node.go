package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jitsnap/internal/core/ports"
)

const (
	ResolverNodeID    graft.ID = "adapter.fs.resolver"
	TaggerNodeID      graft.ID = "adapter.fs.tagger"
	RelativizerNodeID graft.ID = "adapter.fs.relativizer"
)

func init() {
	// Resolver Node (concrete type, used by the config loader)
	graft.Register(graft.Node[*Resolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Resolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Tagger]{
		ID:        TaggerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tagger, error) {
			return NewTagger(), nil
		},
	})

	graft.Register(graft.Node[ports.PathRelativizer]{
		ID:        RelativizerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathRelativizer, error) {
			return NewRelativizer(), nil
		},
	})
}
