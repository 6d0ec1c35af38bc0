package domain

import "go.trai.ch/zerr"

var (
	// ErrBundleFailed is returned when the bundler fails to produce a bundle.
	ErrBundleFailed = zerr.New("bundle failed")

	// ErrTagComputationFailed is returned when a freshness tag cannot be computed for a path.
	ErrTagComputationFailed = zerr.New("failed to compute freshness tag")

	// ErrMetafileMarshalFailed is returned when the bundle metafile cannot be serialized.
	ErrMetafileMarshalFailed = zerr.New("failed to marshal metafile")

	// ErrMetafileParseFailed is returned when the bundler emits a metafile that cannot be parsed.
	ErrMetafileParseFailed = zerr.New("failed to parse metafile")

	// ErrPathOutsideWorkingDir is returned when an output file is not located under the working directory.
	ErrPathOutsideWorkingDir = zerr.New("path is outside working directory")

	// ErrFailedToResolveRelativePath is returned when a relative path cannot be resolved.
	ErrFailedToResolveRelativePath = zerr.New("failed to resolve relative path")

	// ErrFileNotFound is returned when a requested path is not part of the bundle.
	ErrFileNotFound = zerr.New("file not found in bundle")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrNoPathsSpecified is returned when a command that needs paths receives none.
	ErrNoPathsSpecified = zerr.New("no paths specified")

	// ErrMetaQueryNoMatch is returned when a metafile query matches nothing.
	ErrMetaQueryNoMatch = zerr.New("metafile query matched nothing")

	// ErrConfigNotFound is returned when no configuration file can be found.
	ErrConfigNotFound = zerr.New("could not find jitsnap.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoEntryPoints is returned when the configuration declares no entry points.
	ErrNoEntryPoints = zerr.New("no entry points configured")

	// ErrInvalidFormat is returned when the configured output format is unknown.
	ErrInvalidFormat = zerr.New("invalid format, expected 'esm', 'cjs' or 'iife'")

	// ErrInvalidPlatform is returned when the configured platform is unknown.
	ErrInvalidPlatform = zerr.New("invalid platform, expected 'browser', 'node' or 'neutral'")

	// ErrInvalidJSX is returned when the configured JSX mode is unknown.
	ErrInvalidJSX = zerr.New("invalid jsx mode, expected 'transform', 'automatic' or 'preserve'")

	// ErrInvalidTarget is returned when the configured language target is unknown.
	ErrInvalidTarget = zerr.New("invalid target, expected 'esnext' or 'es2015' through 'es2022'")

	// ErrInvalidLoader is returned when a loader mapping names an unknown loader.
	ErrInvalidLoader = zerr.New("invalid loader")

	// ErrFailedToGetRoot is returned when the working directory cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of working directory")

	// ErrStoreCreateFailed is returned when the export store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create export store directory")

	// ErrStoreWriteFailed is returned when an artifact cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write artifact")

	// ErrStoreReadFailed is returned when the export index cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read export index")

	// ErrStoreMarshalFailed is returned when the export index cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal export index")

	// ErrStoreUnmarshalFailed is returned when the export index cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal export index")
)
