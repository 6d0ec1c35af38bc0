package domain

// Import kinds recorded in a metafile.
const (
	ImportStatement  = "import-statement"
	DynamicImport    = "dynamic-import"
	RequireCall      = "require-call"
	RequireResolve   = "require-resolve"
	ImportRule       = "import-rule"
	ComposesFrom     = "composes-from"
	URLToken         = "url-token"
	EntryPointImport = "entry-point"
)

// Metafile describes the inputs and outputs of a bundler run.
// Its JSON shape follows the esbuild metafile format.
type Metafile struct {
	Inputs  map[string]MetafileInput  `json:"inputs"`
	Outputs map[string]MetafileOutput `json:"outputs"`
}

// MetafileInput is a source file consumed by the bundler.
type MetafileInput struct {
	Bytes   int              `json:"bytes"`
	Imports []MetafileImport `json:"imports"`
	Format  string           `json:"format,omitempty"`
}

// MetafileImport is one import edge.
type MetafileImport struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	External bool   `json:"external,omitempty"`
	Original string `json:"original,omitempty"`
}

// MetafileOutput is a file emitted by the bundler.
type MetafileOutput struct {
	Bytes      int                          `json:"bytes"`
	Inputs     map[string]OutputInputDetail `json:"inputs"`
	Imports    []MetafileImport             `json:"imports"`
	Exports    []string                     `json:"exports"`
	EntryPoint string                       `json:"entryPoint,omitempty"`
	CSSBundle  string                       `json:"cssBundle,omitempty"`
}

// OutputInputDetail records how much of an input ended up in an output.
type OutputInputDetail struct {
	BytesInOutput int `json:"bytesInOutput"`
}

// StaticImports returns the paths of the import-statement edges of the output, in order.
// The result is never nil.
func (o MetafileOutput) StaticImports() []string {
	imports := make([]string, 0, len(o.Imports))
	for _, imp := range o.Imports {
		if imp.Kind == ImportStatement {
			imports = append(imports, imp.Path)
		}
	}
	return imports
}
