package domain

// OutputFile is one file emitted by the bundler.
type OutputFile struct {
	// Path is the absolute path the bundler would have written the file to.
	Path     string
	Contents []byte
}

// BundleOutcome is everything a single bundler run produced.
type BundleOutcome struct {
	OutputFiles []OutputFile
	Metafile    *Metafile
	// RawMetafile is the metafile exactly as the bundler serialized it.
	// When empty, Metafile is marshaled instead.
	RawMetafile []byte
}

// FileInfo describes a path served from a snapshot.
type FileInfo struct {
	Path string `json:"path"`
	// ETag is the freshness tag of the path.
	ETag string `json:"etag"`
	// Size is the byte size of the bundled output, zero when the path is not generated.
	Size int64 `json:"size"`
	// Generated reports whether the path is a bundle output.
	Generated bool `json:"generated"`
}

// PathDependencies pairs a bundle path with its static imports.
type PathDependencies struct {
	Path         string   `json:"path"`
	Dependencies []string `json:"dependencies"`
}

// ListEntry is a bundle path and its size.
type ListEntry struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}
