package config_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stampkit/stamp/internal/adapters/config"
	"github.com/stampkit/stamp/internal/adapters/logger"
	"github.com/stampkit/stamp/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoader() *config.Loader {
	log := logger.New()
	log.SetOutput(io.Discard)
	return config.NewLoader(log)
}

func TestLoad_NoSidecar(t *testing.T) {
	src := filepath.Join(t.TempDir(), "mod.cpp")
	require.NoError(t, os.WriteFile(src, []byte("int x;"), 0o600))

	cfg, err := newLoader().Load(src)
	require.NoError(t, err)
	assert.Equal(t, domain.BuildConfig{}, cfg, "missing sidecar yields defaults")
}

func TestLoad_FullSidecar(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "mod.cpp")
	sidecar := src + config.Suffix
	require.NoError(t, os.WriteFile(sidecar, []byte(`
compiler: clang++
flags: ["-O2", "-std=c++17"]
dependencies: ["mod.h", "../common/defs.h"]
sources: ["extra.cpp"]
suffix: ".dylib"
`), 0o600))

	cfg, err := newLoader().Load(src)
	require.NoError(t, err)
	assert.Equal(t, domain.BuildConfig{
		Compiler:     "clang++",
		Flags:        []string{"-O2", "-std=c++17"},
		Dependencies: []string{"mod.h", "../common/defs.h"},
		Sources:      []string{"extra.cpp"},
		Suffix:       ".dylib",
	}, cfg)
}

func TestLoad_MalformedSidecar(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "mod.cpp")
	require.NoError(t, os.WriteFile(src+config.Suffix, []byte("dependencies: ["), 0o600))

	_, err := newLoader().Load(src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestLoad_UnknownKeyStillLoads(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "mod.cpp")
	require.NoError(t, os.WriteFile(src+config.Suffix, []byte(`
compiler: g++
dependenceis: ["typo.h"]
`), 0o600))

	// Misspellings warn but do not fail; the typo'd key is simply ignored.
	cfg, err := newLoader().Load(src)
	require.NoError(t, err)
	assert.Equal(t, "g++", cfg.Compiler)
	assert.Empty(t, cfg.Dependencies)
}
