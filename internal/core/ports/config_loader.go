package ports

import "go.trai.ch/autobahn/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges the user configuration with the project configuration found in dir.
	// When explicitPath is non-empty it replaces the project file lookup and must exist.
	Load(dir, explicitPath string) (domain.Config, error)

	// Validate checks a configuration after command line flags were merged into it.
	Validate(cfg domain.Config) error
}
