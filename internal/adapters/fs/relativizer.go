package fs

import (
	"path/filepath"
	"strings"

	"go.trai.ch/jitsnap/internal/core/domain"
	"go.trai.ch/jitsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathRelativizer = (*Relativizer)(nil)

// Relativizer implements ports.PathRelativizer using filepath.Rel.
type Relativizer struct{}

// NewRelativizer creates a new Relativizer.
func NewRelativizer() *Relativizer {
	return &Relativizer{}
}

// Rel returns target relative to base with forward slashes.
// Targets outside base are rejected.
func (r *Relativizer) Rel(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToResolveRelativePath.Error()), "target", target)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.With(domain.ErrPathOutsideWorkingDir, "base", base), "target", target)
	}

	return filepath.ToSlash(rel), nil
}
