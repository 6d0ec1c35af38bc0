package snapshot

import (
	"go.trai.ch/jitsnap/internal/core/domain"
	"go.trai.ch/jitsnap/internal/core/ports"
)

var _ ports.SnapshotFactory = (*Factory)(nil)

// Factory creates JIT snapshots sharing one set of collaborators.
type Factory struct {
	bundler ports.Bundler
	rel     ports.PathRelativizer
	tagger  ports.Tagger
	tracer  ports.Tracer
}

// NewFactory creates a new Factory.
func NewFactory(
	bundler ports.Bundler,
	rel ports.PathRelativizer,
	tagger ports.Tagger,
	tracer ports.Tracer,
) *Factory {
	return &Factory{
		bundler: bundler,
		rel:     rel,
		tagger:  tagger,
		tracer:  tracer,
	}
}

// New creates a JIT snapshot for opts.
func (f *Factory) New(opts domain.BuildOptions) ports.AssetSnapshot {
	return New(opts, f.bundler, f.rel, f.tagger, f.tracer)
}
