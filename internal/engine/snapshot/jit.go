// Package snapshot implements the lazily built, single-flight bundle snapshot.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/jitsnap/internal/core/domain"
	"go.trai.ch/jitsnap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const buildKey = "bundle"

var _ ports.AssetSnapshot = (*JIT)(nil)

// JIT is an asset snapshot that bundles its configuration on first use.
//
// The bundler runs at most once per successful build. Concurrent callers that
// arrive while a build is in flight share its result. A failed build is
// reported to every caller that waited on it and the next call starts a new one.
type JIT struct {
	opts    domain.BuildOptions
	bundler ports.Bundler
	rel     ports.PathRelativizer
	tagger  ports.Tagger
	tracer  ports.Tracer

	buildGroup singleflight.Group
	tagGroup   singleflight.Group

	mu           sync.RWMutex
	built        bool
	files        map[string][]byte
	dependencies map[string][]string
	etags        map[string]string
}

// New creates a JIT snapshot for opts. Nothing is bundled until the first query.
func New(
	opts domain.BuildOptions,
	bundler ports.Bundler,
	rel ports.PathRelativizer,
	tagger ports.Tagger,
	tracer ports.Tracer,
) *JIT {
	return &JIT{
		opts:         cloneOptions(opts),
		bundler:      bundler,
		rel:          rel,
		tagger:       tagger,
		tracer:       tracer,
		files:        make(map[string][]byte),
		dependencies: make(map[string][]string),
		etags:        make(map[string]string),
	}
}

// Dependencies returns the paths statically imported by the output at path.
// Unknown paths yield an empty, non-nil slice.
func (j *JIT) Dependencies(ctx context.Context, path string) ([]string, error) {
	if err := j.ensureBuilt(ctx); err != nil {
		return nil, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	deps := j.dependencies[path]
	if len(deps) == 0 {
		return []string{}, nil
	}
	return slices.Clone(deps), nil
}

// FileInfo returns the freshness tag of path.
// Tags are computed once per path and reused for the lifetime of the snapshot.
// Bundle outputs are tagged by content, any other path by the file on disk.
func (j *JIT) FileInfo(ctx context.Context, path string) (*domain.FileInfo, error) {
	if err := j.ensureBuilt(ctx); err != nil {
		return nil, err
	}

	j.mu.RLock()
	contents, generated := j.files[path]
	etag, cached := j.etags[path]
	j.mu.RUnlock()

	if !cached {
		var err error
		etag, err = j.tag(ctx, path, contents, generated)
		if err != nil {
			return nil, err
		}
	}

	return &domain.FileInfo{
		Path:      path,
		ETag:      etag,
		Size:      int64(len(contents)),
		Generated: generated,
	}, nil
}

// Read returns the bundled content of path.
// It returns a nil reader and no error when path is not a bundle output.
func (j *JIT) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := j.ensureBuilt(ctx); err != nil {
		return nil, err
	}

	j.mu.RLock()
	contents, ok := j.files[path]
	j.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return io.NopCloser(bytes.NewReader(contents)), nil
}

// Paths returns every bundle path in lexical order.
func (j *JIT) Paths(ctx context.Context) ([]string, error) {
	if err := j.ensureBuilt(ctx); err != nil {
		return nil, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	return slices.Sorted(maps.Keys(j.files)), nil
}

// Metafile returns the serialized metafile of the bundle.
func (j *JIT) Metafile(ctx context.Context) ([]byte, error) {
	if err := j.ensureBuilt(ctx); err != nil {
		return nil, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	return slices.Clone(j.files[domain.MetafileName]), nil
}

// Files returns a copy of the bundle contents keyed by path.
func (j *JIT) Files(ctx context.Context) (map[string][]byte, error) {
	if err := j.ensureBuilt(ctx); err != nil {
		return nil, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	return maps.Clone(j.files), nil
}

// Options returns the build options the snapshot was created with.
func (j *JIT) Options() domain.BuildOptions {
	return cloneOptions(j.opts)
}

func (j *JIT) isBuilt() bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.built
}

// ensureBuilt blocks until the bundle is available.
// A caller whose context ends stops waiting; the build itself keeps running for the others.
func (j *JIT) ensureBuilt(ctx context.Context) error {
	if j.isBuilt() {
		return nil
	}

	ch := j.buildGroup.DoChan(buildKey, func() (any, error) {
		if j.isBuilt() {
			return nil, nil
		}
		return nil, j.build(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return zerr.Wrap(ctx.Err(), "stopped waiting for bundle")
	}
}

func (j *JIT) build(ctx context.Context) error {
	ctx, span := j.tracer.Start(ctx, "snapshot.bundle")
	defer span.End()

	span.SetAttribute("working_dir", j.opts.AbsWorkingDir)
	span.SetAttribute("entry_points", j.opts.EntryPoints)

	files, deps, err := j.bundle(ctx)
	if err != nil {
		err = zerr.With(errors.Join(domain.ErrBundleFailed, err), "working_dir", j.opts.AbsWorkingDir)
		span.RecordError(err)
		return err
	}

	span.SetAttribute("files", len(files))

	j.mu.Lock()
	j.files = files
	j.dependencies = deps
	j.built = true
	j.mu.Unlock()

	return nil
}

func (j *JIT) bundle(ctx context.Context) (map[string][]byte, map[string][]string, error) {
	outcome, err := j.bundler.Bundle(ctx, j.opts)
	if err != nil {
		return nil, nil, err
	}
	if outcome == nil {
		outcome = &domain.BundleOutcome{}
	}

	files := make(map[string][]byte, len(outcome.OutputFiles)+1)
	for _, f := range outcome.OutputFiles {
		rel, err := j.rel.Rel(j.opts.AbsWorkingDir, f.Path)
		if err != nil {
			return nil, nil, zerr.With(err, "path", f.Path)
		}
		files[rel] = f.Contents
	}

	meta := normalizeMetafile(outcome.Metafile)
	data := slices.Clone(outcome.RawMetafile)
	if len(data) == 0 {
		data, err = json.Marshal(meta)
		if err != nil {
			return nil, nil, zerr.Wrap(err, domain.ErrMetafileMarshalFailed.Error())
		}
	}
	files[domain.MetafileName] = data

	deps := make(map[string][]string, len(meta.Outputs))
	for path, out := range meta.Outputs {
		deps[path] = out.StaticImports()
	}

	return files, deps, nil
}

// tag computes the freshness tag of path and caches it on success.
// Concurrent lookups of the same path share one computation. Like ensureBuilt,
// a caller whose context ends stops waiting without failing the others.
func (j *JIT) tag(ctx context.Context, path string, contents []byte, generated bool) (string, error) {
	ch := j.tagGroup.DoChan(path, func() (any, error) {
		j.mu.RLock()
		etag, ok := j.etags[path]
		j.mu.RUnlock()
		if ok {
			return etag, nil
		}
		return j.computeTag(context.WithoutCancel(ctx), path, contents, generated)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", zerr.With(zerr.Wrap(ctx.Err(), "stopped waiting for freshness tag"), "path", path)
	}
}

func (j *JIT) computeTag(ctx context.Context, path string, contents []byte, generated bool) (string, error) {
	ctx, span := j.tracer.Start(ctx, "snapshot.tag")
	defer span.End()
	span.SetAttribute("path", path)
	span.SetAttribute("generated", generated)

	var etag string
	if generated {
		etag = j.tagger.TagContent(contents)
	} else {
		var err error
		etag, err = j.tagger.Tag(ctx, j.resolve(path))
		if err != nil {
			err = zerr.With(errors.Join(domain.ErrTagComputationFailed, err), "path", path)
			span.RecordError(err)
			return "", err
		}
	}

	j.mu.Lock()
	j.etags[path] = etag
	j.mu.Unlock()

	return etag, nil
}

func (j *JIT) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(j.opts.AbsWorkingDir, filepath.FromSlash(path))
}

func normalizeMetafile(meta *domain.Metafile) *domain.Metafile {
	if meta == nil {
		meta = &domain.Metafile{}
	}
	if meta.Inputs == nil {
		meta.Inputs = make(map[string]domain.MetafileInput)
	}
	if meta.Outputs == nil {
		meta.Outputs = make(map[string]domain.MetafileOutput)
	}
	return meta
}

func cloneOptions(opts domain.BuildOptions) domain.BuildOptions {
	opts.EntryPoints = slices.Clone(opts.EntryPoints)
	opts.External = slices.Clone(opts.External)
	opts.Loaders = maps.Clone(opts.Loaders)
	opts.Define = maps.Clone(opts.Define)
	return opts
}
