package ports

import "github.com/stampkit/stamp/internal/core/domain"

// TrailerStore reads and writes the self-describing checksum trailer at the
// tail of an artifact file.
//
//go:generate go run go.uber.org/mock/mockgen -source=trailer.go -destination=mocks/mock_trailer.go -package=mocks
type TrailerStore interface {
	// Append writes the encoded trailer to the end of the artifact in a
	// single write. It never rewrites earlier bytes, so an interrupted append
	// leaves any previous trailer intact and detectable.
	Append(artifactPath string, t domain.Trailer) error

	// Read decodes the trailer at the artifact's absolute end. Every failure
	// mode short of a programming error - missing file, short file, foreign
	// tag, corrupt payload - returns an error wrapping domain.ErrNoTrailer;
	// callers treat all of them as a cache miss.
	Read(artifactPath string) (domain.Trailer, error)
}
