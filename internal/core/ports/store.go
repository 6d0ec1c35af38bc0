package ports

import "go.trai.ch/jitsnap/internal/core/domain"

// ArtifactStore persists bundle outputs as content addressed blobs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Put writes the given files to dir and records them in the export index.
	Put(dir string, index domain.ExportIndex, files map[string][]byte) (*domain.ExportIndex, error)

	// Index reads the export index from dir.
	// Returns nil, nil if no export exists.
	Index(dir string) (*domain.ExportIndex, error)
}
