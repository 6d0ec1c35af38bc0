package config

// Snapfile represents the structure of the jitsnap.yaml configuration file.
type Snapfile struct {
	Version string    `yaml:"version"`
	Root    string    `yaml:"root"`
	Build   *BuildDTO `yaml:"build"`
}

// BuildDTO represents the bundler options in the configuration.
type BuildDTO struct {
	EntryPoints     []string          `yaml:"entryPoints"`
	Outdir          string            `yaml:"outdir"`
	Format          string            `yaml:"format"`
	Platform        string            `yaml:"platform"`
	Target          string            `yaml:"target"`
	Splitting       bool              `yaml:"splitting"`
	Minify          bool              `yaml:"minify"`
	Sourcemap       bool              `yaml:"sourcemap"`
	JSX             string            `yaml:"jsx"`
	JSXImportSource string            `yaml:"jsxImportSource"`
	External        []string          `yaml:"external"`
	Loader          map[string]string `yaml:"loader"`
	Define          map[string]string `yaml:"define"`
}
