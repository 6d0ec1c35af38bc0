package esbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jitsnap/internal/core/ports"
)

// NodeID is the unique identifier for the esbuild bundler Graft node.
const NodeID graft.ID = "adapter.esbuild"

func init() {
	graft.Register(graft.Node[ports.Bundler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Bundler, error) {
			return NewBundler(), nil
		},
	})
}
