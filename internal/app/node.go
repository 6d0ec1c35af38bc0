package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jitsnap/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/jitsnap/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/jitsnap/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/jitsnap/internal/core/ports"
	"go.trai.ch/jitsnap/internal/engine/snapshot"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			snapshot.NodeID,
			cas.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.SnapshotFactory](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, factory, store, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(a, log), nil
}
