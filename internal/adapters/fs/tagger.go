// Package fs provides file system adapters for tagging, resolving, and relativizing paths.
package fs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/jitsnap/internal/core/domain"
	"go.trai.ch/jitsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Tagger = (*Tagger)(nil)

// Tagger computes freshness tags as XXHash digests of file content.
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Tag returns the tag of the file at path.
func (t *Tagger) Tag(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	hash, err := t.ComputeFileHash(path)
	if err != nil {
		return "", err
	}
	return formatTag(hash), nil
}

// TagContent returns the tag of contents.
func (t *Tagger) TagContent(contents []byte) string {
	return formatTag(xxhash.Sum64(contents))
}

// ComputeFileHash computes the XXHash of a file's content.
func (t *Tagger) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// formatTag renders a digest as a quoted strong ETag.
func formatTag(hash uint64) string {
	return fmt.Sprintf("%q", fmt.Sprintf("%016x", hash))
}
