package ports

import "go.trai.ch/jitsnap/internal/core/domain"

// ConfigLoader defines the interface for loading the bundle configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting at path and returns the build options.
	// path may name a config file or a directory to search upwards from.
	Load(path string) (*domain.BuildOptions, error)
}
