package domain

import "path/filepath"

const (
	// MetafileName is the reserved bundle path holding the serialized metafile.
	MetafileName = "metafile.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "jitsnap.yaml"

	// JitsnapDirName is the name of the internal workspace directory.
	JitsnapDirName = ".jitsnap"

	// ExportDirName is the name of the default export directory.
	ExportDirName = "export"

	// BlobDirName is the directory inside an export holding content addressed blobs.
	BlobDirName = "blobs"

	// IndexFileName is the name of the export index file.
	IndexFileName = "index.json"

	// DefaultOutdir is the bundler output directory used when none is configured.
	DefaultOutdir = "dist"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultExportPath returns the default directory for snapshot exports.
// It joins .jitsnap and export.
func DefaultExportPath() string {
	return filepath.Join(JitsnapDirName, ExportDirName)
}
