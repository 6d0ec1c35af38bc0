package ports

import "context"

// Tagger computes freshness tags for files on disk.
//
//go:generate mockgen -source=tagger.go -destination=mocks/mock_tagger.go -package=mocks
type Tagger interface {
	// Tag returns a tag that changes whenever the content at path changes.
	Tag(ctx context.Context, path string) (string, error)
	// TagContent returns the tag of in-memory content.
	TagContent(contents []byte) string
}

// PathRelativizer turns absolute paths into paths relative to a base directory.
type PathRelativizer interface {
	// Rel returns target relative to base using forward slashes.
	Rel(base, target string) (string, error)
}
