package domain

import "time"

// Artifact is one exported bundle file.
type Artifact struct {
	Path   string `json:"path"`
	Digest string `json:"digest"`
	Size   int64  `json:"size"`
}

// ExportIndex maps the bundle paths of an export to their blobs.
type ExportIndex struct {
	WorkingDir  string     `json:"working_dir,omitzero"`
	EntryPoints []string   `json:"entry_points,omitzero"`
	Artifacts   []Artifact `json:"artifacts"`
	CreatedAt   time.Time  `json:"created_at,omitzero"`
}
