package ports

import (
	"context"

	"go.trai.ch/jitsnap/internal/core/domain"
)

// Bundler runs a single bundling pass.
//
//go:generate mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Bundler interface {
	// Bundle builds opts in memory and returns every output file together with the metafile.
	// Output paths are absolute.
	Bundle(ctx context.Context, opts domain.BuildOptions) (*domain.BundleOutcome, error)
}
