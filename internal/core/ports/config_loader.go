package ports

import "go.trai.ch/crcsum/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path selects the
	// default file in cwd, whose absence yields domain.DefaultConfig.
	Load(cwd, path string) (*domain.Config, error)
}
