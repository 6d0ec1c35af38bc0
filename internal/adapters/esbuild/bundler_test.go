package esbuild_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jitsnap/internal/adapters/esbuild"
	"go.trai.ch/jitsnap/internal/core/domain"
)

func writeSources(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	}
	return dir
}

func TestBundler_Bundle(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"main.ts": `import { greet } from "./lib"; console.log(greet("snapshot"));`,
		"lib.ts":  `export function greet(name: string): string { return "hello " + name; }`,
	})

	outcome, err := esbuild.NewBundler().Bundle(context.Background(), domain.BuildOptions{
		AbsWorkingDir: dir,
		EntryPoints:   []string{"main.ts"},
		Outdir:        "dist",
		Format:        domain.FormatESM,
	})
	require.NoError(t, err)

	require.Len(t, outcome.OutputFiles, 1)
	assert.Equal(t, filepath.Join(dir, "dist", "main.js"), outcome.OutputFiles[0].Path)
	assert.Contains(t, string(outcome.OutputFiles[0].Contents), "hello ")

	require.NotNil(t, outcome.Metafile)
	assert.Contains(t, outcome.Metafile.Inputs, "main.ts")
	assert.Contains(t, outcome.Metafile.Inputs, "lib.ts")

	out, ok := outcome.Metafile.Outputs["dist/main.js"]
	require.True(t, ok)
	assert.Equal(t, "main.ts", out.EntryPoint)
	assert.Empty(t, out.StaticImports())

	// The raw metafile keeps empty arrays that the typed view cannot tell from missing ones.
	var raw map[string]map[string]map[string]any
	require.NoError(t, json.Unmarshal(outcome.RawMetafile, &raw))
	assert.Equal(t, []any{}, raw["outputs"]["dist/main.js"]["exports"])
}

func TestBundler_Bundle_DefaultOutdir(t *testing.T) {
	dir := writeSources(t, map[string]string{"index.js": `console.log(1)`})

	outcome, err := esbuild.NewBundler().Bundle(context.Background(), domain.BuildOptions{
		AbsWorkingDir: dir,
		EntryPoints:   []string{"index.js"},
	})
	require.NoError(t, err)

	require.Len(t, outcome.OutputFiles, 1)
	assert.Equal(t, filepath.Join(dir, domain.DefaultOutdir, "index.js"), outcome.OutputFiles[0].Path)
}

func TestBundler_Bundle_ExternalImports(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"main.js": `import React from "react"; import("./lazy.js"); console.log(React);`,
		"lazy.js": `export default 1;`,
	})

	outcome, err := esbuild.NewBundler().Bundle(context.Background(), domain.BuildOptions{
		AbsWorkingDir: dir,
		EntryPoints:   []string{"main.js"},
		Outdir:        "dist",
		External:      []string{"react"},
	})
	require.NoError(t, err)

	out, ok := outcome.Metafile.Outputs["dist/main.js"]
	require.True(t, ok)
	assert.Equal(t, []string{"react"}, out.StaticImports())
}

func TestBundler_Bundle_Splitting(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"a.js":      `import { shared } from "./shared.js"; console.log("a", shared);`,
		"b.js":      `import { shared } from "./shared.js"; console.log("b", shared);`,
		"shared.js": `export const shared = "common";`,
	})

	outcome, err := esbuild.NewBundler().Bundle(context.Background(), domain.BuildOptions{
		AbsWorkingDir: dir,
		EntryPoints:   []string{"a.js", "b.js"},
		Outdir:        "dist",
		Format:        domain.FormatESM,
		Splitting:     true,
	})
	require.NoError(t, err)

	assert.Len(t, outcome.OutputFiles, 3)

	out, ok := outcome.Metafile.Outputs["dist/a.js"]
	require.True(t, ok)
	imports := out.StaticImports()
	require.Len(t, imports, 1)
	assert.True(t, strings.HasPrefix(imports[0], "dist/chunk-"), imports[0])
}

func TestBundler_Bundle_Loader(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"main.js":      `import msg from "./greeting.txt"; console.log(msg);`,
		"greeting.txt": `plain text greeting`,
	})

	outcome, err := esbuild.NewBundler().Bundle(context.Background(), domain.BuildOptions{
		AbsWorkingDir: dir,
		EntryPoints:   []string{"main.js"},
		Outdir:        "dist",
		Loaders:       map[string]string{".txt": "text"},
	})
	require.NoError(t, err)

	require.Len(t, outcome.OutputFiles, 1)
	assert.Contains(t, string(outcome.OutputFiles[0].Contents), "plain text greeting")
}

func TestBundler_Bundle_Define(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"main.js": `console.log(MODE);`,
	})

	outcome, err := esbuild.NewBundler().Bundle(context.Background(), domain.BuildOptions{
		AbsWorkingDir: dir,
		EntryPoints:   []string{"main.js"},
		Outdir:        "dist",
		Define:        map[string]string{"MODE": `"production"`},
	})
	require.NoError(t, err)

	require.Len(t, outcome.OutputFiles, 1)
	assert.Contains(t, string(outcome.OutputFiles[0].Contents), `"production"`)
}

func TestBundler_Bundle_ResolveError(t *testing.T) {
	dir := writeSources(t, map[string]string{
		"main.ts": `import "./missing";`,
	})

	_, err := esbuild.NewBundler().Bundle(context.Background(), domain.BuildOptions{
		AbsWorkingDir: dir,
		EntryPoints:   []string{"main.ts"},
		Outdir:        "dist",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "esbuild reported errors")
	assert.Contains(t, err.Error(), "main.ts:1:")
	assert.Contains(t, err.Error(), "Could not resolve")
}

func TestBundler_Bundle_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    domain.BuildOptions
		wantErr error
	}{
		{name: "format", opts: domain.BuildOptions{Format: "amd"}, wantErr: domain.ErrInvalidFormat},
		{name: "platform", opts: domain.BuildOptions{Platform: "deno"}, wantErr: domain.ErrInvalidPlatform},
		{name: "jsx", opts: domain.BuildOptions{JSX: "classic"}, wantErr: domain.ErrInvalidJSX},
		{name: "target", opts: domain.BuildOptions{Target: "es3"}, wantErr: domain.ErrInvalidTarget},
		{name: "loader", opts: domain.BuildOptions{Loaders: map[string]string{".x": "magic"}}, wantErr: domain.ErrInvalidLoader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.AbsWorkingDir = t.TempDir()
			tt.opts.EntryPoints = []string{"main.js"}

			_, err := esbuild.NewBundler().Bundle(context.Background(), tt.opts)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBundler_Bundle_Cancelled(t *testing.T) {
	dir := writeSources(t, map[string]string{"main.js": `console.log(1)`})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := esbuild.NewBundler().Bundle(ctx, domain.BuildOptions{
		AbsWorkingDir: dir,
		EntryPoints:   []string{"main.js"},
	})
	require.ErrorIs(t, err, context.Canceled)
}
