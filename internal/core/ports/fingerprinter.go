// Package ports defines the core interfaces for the application.
package ports

import "github.com/stampkit/stamp/internal/core/domain"

// Fingerprinter computes a deterministic digest over an ordered set of file
// contents and a build-environment key.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// ComputeDigest reads every file in files, in list order, and folds its
	// contents together with key into a single digest. Any unreadable path
	// aborts the whole computation with an error wrapping
	// domain.ErrFileReadFailed; there is no partial result.
	ComputeDigest(files domain.FileSet, key domain.EnvironmentKey) (domain.Digest, error)
}
