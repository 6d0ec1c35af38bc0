package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jitsnap/internal/adapters/esbuild"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jitsnap/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jitsnap/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jitsnap/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot factory Graft node.
const NodeID graft.ID = "engine.snapshot"

func init() {
	graft.Register(graft.Node[ports.SnapshotFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			esbuild.NodeID,
			fs.RelativizerNodeID,
			fs.TaggerNodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.SnapshotFactory, error) {
			bundler, err := graft.Dep[ports.Bundler](ctx)
			if err != nil {
				return nil, err
			}

			rel, err := graft.Dep[ports.PathRelativizer](ctx)
			if err != nil {
				return nil, err
			}

			tagger, err := graft.Dep[ports.Tagger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(bundler, rel, tagger, tracer), nil
		},
	})
}
