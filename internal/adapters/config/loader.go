// Package config provides the configuration loader for jitsnap.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/jitsnap/internal/core/domain"
	"go.trai.ch/jitsnap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// EntryResolver expands entry point patterns relative to a root directory.
type EntryResolver interface {
	ResolveEntryPoints(patterns []string, root string) ([]string, error)
}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	Resolver EntryResolver
}

// NewLoader creates a new Loader with the given logger and entry point resolver.
func NewLoader(logger ports.Logger, resolver EntryResolver) *Loader {
	return &Loader{Logger: logger, Resolver: resolver}
}

// Load reads the configuration at path and returns the build options.
// If path is a directory, jitsnap.yaml is searched for in it and its parents.
func (l *Loader) Load(path string) (*domain.BuildOptions, error) {
	configPath, err := l.findConfiguration(path)
	if err != nil {
		return nil, err
	}

	var snapfile Snapfile
	if err := readAndUnmarshalYAML(configPath, &snapfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if snapfile.Build == nil || len(snapfile.Build.EntryPoints) == 0 {
		return nil, zerr.With(domain.ErrNoEntryPoints, "path", configPath)
	}

	root, err := resolveRoot(configPath, snapfile.Root)
	if err != nil {
		return nil, err
	}

	return l.buildOptions(root, snapfile.Build)
}

func (l *Loader) findConfiguration(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", zerr.With(domain.ErrConfigNotFound, "path", path)
	}
	if !info.IsDir() {
		return abs, nil
	}

	currentDir := abs
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", path)
}

func (l *Loader) buildOptions(root string, dto *BuildDTO) (*domain.BuildOptions, error) {
	if err := validateBuild(dto); err != nil {
		return nil, err
	}

	entryPoints, err := l.Resolver.ResolveEntryPoints(dto.EntryPoints, root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve entry points")
	}

	format := strings.ToLower(dto.Format)
	splitting := dto.Splitting
	if splitting && format != "" && format != domain.FormatESM {
		l.Logger.Warn("'splitting' requires the esm format and has been disabled")
		splitting = false
	}

	outdir := dto.Outdir
	if outdir == "" {
		outdir = domain.DefaultOutdir
	}

	return &domain.BuildOptions{
		AbsWorkingDir:   root,
		EntryPoints:     entryPoints,
		Outdir:          filepath.ToSlash(filepath.Clean(outdir)),
		Format:          format,
		Platform:        strings.ToLower(dto.Platform),
		Target:          strings.ToLower(dto.Target),
		Splitting:       splitting,
		Minify:          dto.Minify,
		Sourcemap:       dto.Sourcemap,
		JSX:             strings.ToLower(dto.JSX),
		JSXImportSource: dto.JSXImportSource,
		External:        canonicalizeStrings(dto.External),
		Loaders:         canonicalizeLoaders(dto.Loader),
		Define:          dto.Define,
	}, nil
}

func validateBuild(dto *BuildDTO) error {
	switch strings.ToLower(dto.Format) {
	case "", domain.FormatESM, domain.FormatCJS, domain.FormatIIFE:
	default:
		return zerr.With(domain.ErrInvalidFormat, "format", dto.Format)
	}

	switch strings.ToLower(dto.Platform) {
	case "", domain.PlatformBrowser, domain.PlatformNode, domain.PlatformNeutral:
	default:
		return zerr.With(domain.ErrInvalidPlatform, "platform", dto.Platform)
	}

	switch strings.ToLower(dto.JSX) {
	case "", domain.JSXTransform, domain.JSXAutomatic, domain.JSXPreserve:
	default:
		return zerr.With(domain.ErrInvalidJSX, "jsx", dto.JSX)
	}

	return nil
}

func canonicalizeStrings(strs []string) []string {
	if len(strs) == 0 {
		return nil
	}

	sorted := slices.Clone(strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}

// canonicalizeLoaders makes every extension key start with a dot.
func canonicalizeLoaders(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}

	out := make(map[string]string, len(m))
	for ext, loader := range m {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out[ext] = strings.ToLower(loader)
	}
	return out
}

func resolveRoot(configPath, configuredRoot string) (string, error) {
	configDir := filepath.Dir(configPath)
	root := configDir
	switch {
	case configuredRoot == "":
	case filepath.IsAbs(configuredRoot):
		root = configuredRoot
	default:
		root = filepath.Join(configDir, configuredRoot)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}
	return filepath.Clean(abs), nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
