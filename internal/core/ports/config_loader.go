package ports

import "go.trai.ch/protonrun/internal/core/domain"

// ConfigOverrides carries values set on the command line. Empty fields leave
// the file and environment configuration untouched.
type ConfigOverrides struct {
	AppID     string
	LogFormat string
}

// ConfigLoader defines the interface for loading the user configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration. An empty path selects the default
	// location, which may be absent.
	Load(path string, overrides ConfigOverrides) (*domain.Config, error)
}
