// Package domain contains the core domain types of the bundle snapshot cache.
package domain

// Output formats understood by the bundler.
const (
	FormatESM  = "esm"
	FormatCJS  = "cjs"
	FormatIIFE = "iife"
)

// Target platforms understood by the bundler.
const (
	PlatformBrowser = "browser"
	PlatformNode    = "node"
	PlatformNeutral = "neutral"
)

// JSX transform modes.
const (
	JSXTransform = "transform"
	JSXAutomatic = "automatic"
	JSXPreserve  = "preserve"
)

// BuildOptions is the bundler configuration a snapshot is built from.
// A snapshot never mutates it.
type BuildOptions struct {
	// AbsWorkingDir is the absolute directory all output paths are made relative to.
	AbsWorkingDir string
	// EntryPoints are the modules the bundle starts from, relative to AbsWorkingDir.
	EntryPoints []string
	// Outdir is the output directory, relative to AbsWorkingDir.
	Outdir string

	Format          string
	Platform        string
	Target          string
	Splitting       bool
	Minify          bool
	Sourcemap       bool
	JSX             string
	JSXImportSource string

	// External lists module specifiers left out of the bundle.
	External []string
	// Loaders maps a file extension (".svg") to a loader name ("file").
	Loaders map[string]string
	// Define maps global identifiers to replacement expressions.
	Define map[string]string
}
