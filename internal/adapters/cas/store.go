// Package cas implements content addressable storage for exported bundles.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/jitsnap/internal/core/domain"
	"go.trai.ch/jitsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore with one blob per distinct content and a JSON index.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Put writes files as blobs under dir and records them in the index.
// Identical contents share one blob. Existing blobs are not rewritten.
func (s *Store) Put(dir string, index domain.ExportIndex, files map[string][]byte) (*domain.ExportIndex, error) {
	blobDir := filepath.Join(dir, domain.BlobDirName)
	if err := os.MkdirAll(blobDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", blobDir)
	}

	index.Artifacts = make([]domain.Artifact, 0, len(files))
	for _, path := range slices.Sorted(maps.Keys(files)) {
		contents := files[path]
		digest := fmt.Sprintf("%016x", xxhash.Sum64(contents))

		if err := writeBlob(filepath.Join(blobDir, digest), contents); err != nil {
			return nil, zerr.With(err, "artifact", path)
		}

		index.Artifacts = append(index.Artifacts, domain.Artifact{
			Path:   path,
			Digest: digest,
			Size:   int64(len(contents)),
		})
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	//nolint:gosec // Path is constructed from the caller's export directory
	if err := os.WriteFile(filepath.Join(dir, domain.IndexFileName), data, domain.FilePerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return &index, nil
}

// Index reads the export index from dir.
// Returns nil, nil if dir holds no export.
func (s *Store) Index(dir string) (*domain.ExportIndex, error) {
	//nolint:gosec // Path is constructed from the caller's export directory
	data, err := os.ReadFile(filepath.Join(dir, domain.IndexFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var index domain.ExportIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &index, nil
}

func writeBlob(path string, contents []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	//nolint:gosec // Blob name is a content digest
	if err := os.WriteFile(path, contents, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}
