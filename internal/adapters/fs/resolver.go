package fs

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
)

// Resolver expands entry point patterns into concrete files.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveEntryPoints resolves patterns relative to root.
// Literal paths are kept as is so the bundler can report them; glob patterns must match at least one file.
// The result is deduplicated, relative to root, and uses forward slashes.
func (r *Resolver) ResolveEntryPoints(patterns []string, root string) ([]string, error) {
	seen := make(map[string]struct{}, len(patterns))
	result := make([]string, 0, len(patterns))

	add := func(p string) {
		p = filepath.ToSlash(filepath.Clean(p))
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}

	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			add(pattern)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
		}

		files := make([]string, 0, len(matches))
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			rel, err := filepath.Rel(root, match)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to relativize match"), "path", match)
			}
			files = append(files, rel)
		}

		if len(files) == 0 {
			return nil, zerr.With(zerr.New("entry point not found"), "pattern", pattern)
		}

		slices.Sort(files)
		for _, f := range files {
			add(f)
		}
	}

	return result, nil
}

func hasMeta(pattern string) bool {
	return slices.ContainsFunc([]rune(pattern), func(c rune) bool {
		return c == '*' || c == '?' || c == '['
	})
}
