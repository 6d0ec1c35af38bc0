// Package app implements the application layer for jitsnap.
package app

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"go.trai.ch/jitsnap/internal/core/domain"
	"go.trai.ch/jitsnap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// configurable is implemented by loggers whose output mode can change at runtime.
type configurable interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// Settings are the global command line options.
type Settings struct {
	ConfigPath string
	JSON       bool
	Verbose    bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	factory      ports.SnapshotFactory
	store        ports.ArtifactStore
	logger       ports.Logger
	now          func() time.Time

	configPath string

	mu   sync.Mutex
	opts *domain.BuildOptions
	snap ports.AssetSnapshot
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	factory ports.SnapshotFactory,
	store ports.ArtifactStore,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		factory:      factory,
		store:        store,
		logger:       log,
		now:          time.Now,
		configPath:   ".",
	}
}

// WithClock replaces the clock used to stamp exports.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Configure applies the global command line options.
// It must be called before the first query.
func (a *App) Configure(s Settings) {
	if s.ConfigPath != "" {
		a.configPath = s.ConfigPath
	}
	if l, ok := a.logger.(configurable); ok {
		l.SetJSON(s.JSON)
		l.SetVerbose(s.Verbose)
	}
}

// snapshot loads the configuration and creates the snapshot on first use.
func (a *App) snapshot() (ports.AssetSnapshot, *domain.BuildOptions, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.snap != nil {
		return a.snap, a.opts, nil
	}

	opts, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	a.logger.Debug(fmt.Sprintf("bundling %d entry points in %s", len(opts.EntryPoints), opts.AbsWorkingDir))

	a.opts = opts
	a.snap = a.factory.New(*opts)
	return a.snap, a.opts, nil
}

// Dependencies returns the static imports of each path, in argument order.
func (a *App) Dependencies(ctx context.Context, paths []string) ([]domain.PathDependencies, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoPathsSpecified
	}

	snap, _, err := a.snapshot()
	if err != nil {
		return nil, err
	}

	results := make([]domain.PathDependencies, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			deps, err := snap.Dependencies(ctx, path)
			if err != nil {
				return err
			}
			results[i] = domain.PathDependencies{Path: path, Dependencies: deps}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FileInfos returns the freshness tag of each path, in argument order.
func (a *App) FileInfos(ctx context.Context, paths []string) ([]domain.FileInfo, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoPathsSpecified
	}

	snap, _, err := a.snapshot()
	if err != nil {
		return nil, err
	}

	results := make([]domain.FileInfo, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			info, err := snap.FileInfo(ctx, path)
			if err != nil {
				return err
			}
			results[i] = *info
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Read copies the bundled content of path to w.
func (a *App) Read(ctx context.Context, path string, w io.Writer) error {
	snap, _, err := a.snapshot()
	if err != nil {
		return err
	}

	rc, err := snap.Read(ctx, path)
	if err != nil {
		return err
	}
	if rc == nil {
		return zerr.With(zerr.Wrap(domain.ErrFileNotFound, "cannot read bundle path"), "path", path)
	}
	defer func() { _ = rc.Close() }()

	if _, err := io.Copy(w, rc); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write bundle content"), "path", path)
	}
	return nil
}

// List returns every bundle path with its size.
func (a *App) List(ctx context.Context) ([]domain.ListEntry, error) {
	snap, _, err := a.snapshot()
	if err != nil {
		return nil, err
	}

	files, err := snap.Files(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ListEntry, 0, len(files))
	for path, contents := range files {
		entries = append(entries, domain.ListEntry{Path: path, Size: int64(len(contents))})
	}
	slices.SortFunc(entries, func(x, y domain.ListEntry) int {
		return cmp.Compare(x.Path, y.Path)
	})
	return entries, nil
}

// Meta evaluates a gjson query against the metafile.
// An empty query returns the whole metafile, indented.
func (a *App) Meta(ctx context.Context, query string) (string, error) {
	snap, _, err := a.snapshot()
	if err != nil {
		return "", err
	}

	raw, err := snap.Metafile(ctx)
	if err != nil {
		return "", err
	}

	if query == "" {
		return strings.TrimSpace(gjson.GetBytes(raw, "@pretty").Raw), nil
	}

	res := gjson.GetBytes(raw, query)
	if !res.Exists() {
		return "", zerr.With(zerr.Wrap(domain.ErrMetaQueryNoMatch, "metafile query failed"), "query", query)
	}
	if res.IsObject() || res.IsArray() {
		return strings.TrimSpace(gjson.Get(res.Raw, "@pretty").Raw), nil
	}
	return res.String(), nil
}

// Export writes every bundle path into a content addressed store at dir.
// An empty dir selects the default export directory.
func (a *App) Export(ctx context.Context, dir string) (*domain.ExportIndex, error) {
	if dir == "" {
		dir = domain.DefaultExportPath()
	}

	snap, opts, err := a.snapshot()
	if err != nil {
		return nil, err
	}

	files, err := snap.Files(ctx)
	if err != nil {
		return nil, err
	}

	previous, err := a.store.Index(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read previous export")
	}
	if previous != nil {
		a.logger.Debug(fmt.Sprintf("replacing export of %d files from %s",
			len(previous.Artifacts), previous.CreatedAt.Format(time.RFC3339)))
	}

	index, err := a.store.Put(dir, domain.ExportIndex{
		WorkingDir:  opts.AbsWorkingDir,
		EntryPoints: slices.Clone(opts.EntryPoints),
		CreatedAt:   a.now().UTC(),
	}, files)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to export bundle"), "dir", dir)
	}

	a.logger.Info(fmt.Sprintf("exported %d files to %s", len(index.Artifacts), dir))
	return index, nil
}
