package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/stampkit/stamp/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultSuffix is the artifact filename suffix when the sidecar config
// names none.
const DefaultSuffix = ".so"

// ArtifactPath derives the artifact path for a source file. The artifact
// lives next to its source as <base><suffix>; a non-empty config base gets a
// short hash infix so artifacts built under different bases coexist instead
// of endlessly invalidating each other.
func ArtifactPath(sourcePath string, cfg domain.BuildConfig, configBase string) string {
	suffix := cfg.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	if configBase != "" {
		base = fmt.Sprintf("%s.%08x", base, xxhash.Sum64String(configBase)&0xffffffff)
	}
	return filepath.Join(filepath.Dir(sourcePath), base+suffix)
}

// absSource absolutizes the user-provided source path. Every path recorded
// in a trailer is absolute, so validation works from any working directory.
func absSource(sourcePath string) (string, error) {
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve source path"), "path", sourcePath)
	}
	return abs, nil
}
