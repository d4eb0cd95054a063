// Package config provides the sidecar build configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/stampkit/stamp/internal/core/domain"
	"github.com/stampkit/stamp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Suffix is appended to a source path to locate its sidecar config, e.g.
// demo.cpp -> demo.cpp.stamp.yaml.
const Suffix = ".stamp.yaml"

// Loader implements ports.ConfigLoader using a YAML sidecar file next to the
// source.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the sidecar config for the given source file. A missing sidecar
// yields the zero config; an existing but unreadable or unparseable one is a
// hard error, since silently ignoring it would build with wrong flags and
// stamp a digest over the wrong dependency list.
func (l *Loader) Load(sourcePath string) (domain.BuildConfig, error) {
	path := sourcePath + Suffix

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the user-provided source
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.BuildConfig{}, nil
		}
		return domain.BuildConfig{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var dto sidecarDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domain.BuildConfig{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	l.warnUnknownKeys(path, data)

	return domain.BuildConfig{
		Compiler:     dto.Compiler,
		Flags:        dto.Flags,
		Dependencies: dto.Dependencies,
		Sources:      dto.Sources,
		Suffix:       dto.Suffix,
	}, nil
}

// warnUnknownKeys reports top-level keys that match no known setting, which
// almost always means a misspelling that would silently drop a dependency.
func (l *Loader) warnUnknownKeys(path string, data []byte) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return
	}
	for key := range raw {
		if !knownKeys[key] {
			l.logger.Warn("unknown build config key, probably misspelling", "path", path, "key", key)
		}
	}
}

var knownKeys = map[string]bool{
	"compiler":     true,
	"flags":        true,
	"dependencies": true,
	"sources":      true,
	"suffix":       true,
}
