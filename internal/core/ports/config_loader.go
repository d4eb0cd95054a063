package ports

import "github.com/stampkit/stamp/internal/core/domain"

// ConfigLoader loads the per-source build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the sidecar config for the given source file. A missing
	// sidecar is not an error and yields the zero config.
	Load(sourcePath string) (domain.BuildConfig, error)
}
