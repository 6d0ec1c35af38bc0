package ports

import (
	"context"
	"io"

	"go.trai.ch/jitsnap/internal/core/domain"
)

// AssetSnapshot serves the outputs of a lazily built bundle.
// The bundle is produced at most once, on the first call that needs it.
//
//go:generate mockgen -source=snapshot.go -destination=mocks/mock_snapshot.go -package=mocks
type AssetSnapshot interface {
	// Dependencies returns the static imports of the output at path, or an empty list.
	Dependencies(ctx context.Context, path string) ([]string, error)

	// FileInfo returns the freshness tag and size of path.
	FileInfo(ctx context.Context, path string) (*domain.FileInfo, error)

	// Read returns the content of path, or nil when path is not a bundle output.
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Paths returns every bundle path in lexical order, including the metafile.
	Paths(ctx context.Context) ([]string, error)

	// Metafile returns the serialized metafile.
	Metafile(ctx context.Context) ([]byte, error)

	// Files returns the contents of every bundle path.
	Files(ctx context.Context) (map[string][]byte, error)
}

// SnapshotFactory creates snapshots bound to one set of build options.
type SnapshotFactory interface {
	New(opts domain.BuildOptions) AssetSnapshot
}
