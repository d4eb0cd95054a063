package cache

import (
	"path/filepath"

	"github.com/stampkit/stamp/internal/core/domain"
	"github.com/stampkit/stamp/internal/core/ports"
)

// Writer stamps a freshly built artifact with its checksum trailer.
type Writer struct {
	fingerprinter ports.Fingerprinter
	trailers      ports.TrailerStore
}

// NewWriter creates a new Writer.
func NewWriter(fingerprinter ports.Fingerprinter, trailers ports.TrailerStore) *Writer {
	return &Writer{
		fingerprinter: fingerprinter,
		trailers:      trailers,
	}
}

// Stamp computes the canonical file set for a just-built artifact, digests
// it, and appends the trailer.
//
// The canonical order is fixed: explicit config dependencies (absolutized
// against the source's directory), then generated intermediate sources, then
// the primary source last. Order reaches the digest, so the same order must
// hold for any artifact stamped with this format - though in practice only
// the recorded list is ever reused, never re-derived.
//
// A failed stamp leaves the artifact usable but unverifiable; the caller
// treats it as "build succeeded, cache cold", not as a build failure.
func (w *Writer) Stamp(artifactPath, sourcePath string, cfg domain.BuildConfig, extraSources []string, key domain.EnvironmentKey) error {
	files := CanonicalFileSet(sourcePath, cfg.Dependencies, extraSources)

	digest, err := w.fingerprinter.ComputeDigest(files, key)
	if err != nil {
		return err
	}

	return w.trailers.Append(artifactPath, domain.Trailer{Files: files, Digest: digest})
}

// CanonicalFileSet builds the ordered file set recorded in a trailer:
// dependencies, extra sources, primary source last.
func CanonicalFileSet(sourcePath string, dependencies, extraSources []string) domain.FileSet {
	dir := filepath.Dir(sourcePath)

	files := make(domain.FileSet, 0, len(dependencies)+len(extraSources)+1)
	for _, dep := range dependencies {
		files = append(files, makeAbsolute(dir, dep))
	}
	files = append(files, extraSources...)
	files = append(files, sourcePath)
	return files
}

func makeAbsolute(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
