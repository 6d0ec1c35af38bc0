// Package esbuild implements ports.Bundler on top of the esbuild Go API.
package esbuild

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/jitsnap/internal/core/domain"
	"go.trai.ch/jitsnap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Bundler = (*Bundler)(nil)

// Bundler bundles in memory. Nothing is written to disk.
type Bundler struct{}

// NewBundler creates a new Bundler.
func NewBundler() *Bundler {
	return &Bundler{}
}

// Bundle runs esbuild once for opts.
// The build is cancelled when ctx is done.
func (b *Bundler) Bundle(ctx context.Context, opts domain.BuildOptions) (*domain.BundleOutcome, error) {
	buildOpts, err := toBuildOptions(opts)
	if err != nil {
		return nil, err
	}

	bctx, cerr := api.Context(buildOpts)
	if cerr != nil {
		return nil, messagesError("invalid build options", cerr.Errors)
	}
	defer bctx.Dispose()

	stop := context.AfterFunc(ctx, bctx.Cancel)
	defer stop()

	result := bctx.Rebuild()
	if err := ctx.Err(); err != nil {
		return nil, zerr.Wrap(err, "bundle cancelled")
	}
	if len(result.Errors) > 0 {
		return nil, messagesError("esbuild reported errors", result.Errors)
	}

	meta := &domain.Metafile{}
	if result.Metafile != "" {
		if err := json.Unmarshal([]byte(result.Metafile), meta); err != nil {
			return nil, zerr.Wrap(err, domain.ErrMetafileParseFailed.Error())
		}
	}

	files := make([]domain.OutputFile, 0, len(result.OutputFiles))
	for _, f := range result.OutputFiles {
		files = append(files, domain.OutputFile{
			Path:     f.Path,
			Contents: f.Contents,
		})
	}

	return &domain.BundleOutcome{
		OutputFiles: files,
		Metafile:    meta,
		RawMetafile: []byte(result.Metafile),
	}, nil
}

//nolint:cyclop // flat option mapping
func toBuildOptions(opts domain.BuildOptions) (api.BuildOptions, error) {
	outdir := opts.Outdir
	if outdir == "" {
		outdir = domain.DefaultOutdir
	}
	if !filepath.IsAbs(outdir) {
		outdir = filepath.Join(opts.AbsWorkingDir, outdir)
	}

	format, err := toFormat(opts.Format)
	if err != nil {
		return api.BuildOptions{}, err
	}
	platform, err := toPlatform(opts.Platform)
	if err != nil {
		return api.BuildOptions{}, err
	}
	target, err := toTarget(opts.Target)
	if err != nil {
		return api.BuildOptions{}, err
	}
	jsx, err := toJSX(opts.JSX)
	if err != nil {
		return api.BuildOptions{}, err
	}
	loaders, err := toLoaders(opts.Loaders)
	if err != nil {
		return api.BuildOptions{}, err
	}

	sourcemap := api.SourceMapNone
	if opts.Sourcemap {
		sourcemap = api.SourceMapLinked
	}

	return api.BuildOptions{
		AbsWorkingDir:     opts.AbsWorkingDir,
		EntryPoints:       opts.EntryPoints,
		Outdir:            outdir,
		Bundle:            true,
		Write:             false,
		Metafile:          true,
		Format:            format,
		Platform:          platform,
		Target:            target,
		Splitting:         opts.Splitting,
		MinifyWhitespace:  opts.Minify,
		MinifyIdentifiers: opts.Minify,
		MinifySyntax:      opts.Minify,
		Sourcemap:         sourcemap,
		JSX:               jsx,
		JSXImportSource:   opts.JSXImportSource,
		External:          opts.External,
		Loader:            loaders,
		Define:            opts.Define,
		LogLevel:          api.LogLevelSilent,
	}, nil
}

func toFormat(s string) (api.Format, error) {
	switch s {
	case "", domain.FormatESM:
		return api.FormatESModule, nil
	case domain.FormatCJS:
		return api.FormatCommonJS, nil
	case domain.FormatIIFE:
		return api.FormatIIFE, nil
	default:
		return api.FormatDefault, zerr.With(zerr.Wrap(domain.ErrInvalidFormat, "unsupported build option"), "format", s)
	}
}

func toPlatform(s string) (api.Platform, error) {
	switch s {
	case "", domain.PlatformBrowser:
		return api.PlatformBrowser, nil
	case domain.PlatformNode:
		return api.PlatformNode, nil
	case domain.PlatformNeutral:
		return api.PlatformNeutral, nil
	default:
		return api.PlatformBrowser, zerr.With(zerr.Wrap(domain.ErrInvalidPlatform, "unsupported build option"), "platform", s)
	}
}

var targets = map[string]api.Target{
	"esnext": api.ESNext,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
}

func toTarget(s string) (api.Target, error) {
	if s == "" {
		return api.ESNext, nil
	}
	t, ok := targets[strings.ToLower(s)]
	if !ok {
		return api.DefaultTarget, zerr.With(zerr.Wrap(domain.ErrInvalidTarget, "unsupported build option"), "target", s)
	}
	return t, nil
}

func toJSX(s string) (api.JSX, error) {
	switch s {
	case "", domain.JSXTransform:
		return api.JSXTransform, nil
	case domain.JSXAutomatic:
		return api.JSXAutomatic, nil
	case domain.JSXPreserve:
		return api.JSXPreserve, nil
	default:
		return api.JSXTransform, zerr.With(zerr.Wrap(domain.ErrInvalidJSX, "unsupported build option"), "jsx", s)
	}
}

var loaders = map[string]api.Loader{
	"js":         api.LoaderJS,
	"jsx":        api.LoaderJSX,
	"ts":         api.LoaderTS,
	"tsx":        api.LoaderTSX,
	"json":       api.LoaderJSON,
	"text":       api.LoaderText,
	"base64":     api.LoaderBase64,
	"dataurl":    api.LoaderDataURL,
	"file":       api.LoaderFile,
	"binary":     api.LoaderBinary,
	"css":        api.LoaderCSS,
	"copy":       api.LoaderCopy,
	"empty":      api.LoaderEmpty,
	"local-css":  api.LoaderLocalCSS,
	"global-css": api.LoaderGlobalCSS,
	"default":    api.LoaderDefault,
}

func toLoaders(m map[string]string) (map[string]api.Loader, error) {
	if len(m) == 0 {
		return nil, nil
	}
	out := make(map[string]api.Loader, len(m))
	for ext, name := range m {
		l, ok := loaders[name]
		if !ok {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidLoader, "unsupported build option"), "extension", ext), "loader", name)
		}
		out[ext] = l
	}
	return out, nil
}

// messagesError folds esbuild messages into one error, one message per line.
func messagesError(msg string, msgs []api.Message) error {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Location != nil {
			lines = append(lines, fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text))
			continue
		}
		lines = append(lines, m.Text)
	}
	return zerr.With(zerr.Wrap(zerr.New(strings.Join(lines, "\n")), msg), "errors", len(msgs))
}
