// Package fingerprint computes content digests over ordered file sets.
package fingerprint

import (
	"encoding/binary"
	"encoding/hex"
	"os"

	"github.com/stampkit/stamp/internal/core/domain"
	"github.com/stampkit/stamp/internal/core/ports"
	"github.com/zeebo/blake3"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Computer)(nil)

// digestSize is the digest length in bytes. 128 bits is plenty for a cache
// key; blake3 extends to any output length.
const digestSize = 16

// fileTag separates per-file records in the hash input. Together with the
// length prefix it makes the encoding of consecutive files unambiguous:
// file A followed by file B never hashes like a single file AB.
var fileTag = []byte("gostamp01")

// Computer implements ports.Fingerprinter using blake3.
//
// The computation is deterministic for identical (files, key, file contents):
// it folds in the environment key fields in their canonical order, then each
// file in list order as length-prefixed raw bytes. Nothing else - no
// timestamps, no directory traversal - reaches the hash state.
type Computer struct{}

// NewComputer creates a new Computer.
func NewComputer() *Computer {
	return &Computer{}
}

// ComputeDigest implements ports.Fingerprinter.
func (c *Computer) ComputeDigest(files domain.FileSet, key domain.EnvironmentKey) (domain.Digest, error) {
	hasher := blake3.New()

	// Seed with the canonical key encoding. Field order is fixed by
	// domain.EnvironmentKey and NUL separators keep fields unambiguous.
	for _, field := range key.Fields() {
		_, _ = hasher.WriteString(field)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	for _, path := range files {
		data, err := os.ReadFile(path) //nolint:gosec // Paths come from the recorded file set
		if err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrFileReadFailed, err.Error()), "path", path)
		}

		var length [8]byte
		binary.BigEndian.PutUint64(length[:], uint64(len(data)))
		_, _ = hasher.Write(length[:])
		_, _ = hasher.Write(data)
		_, _ = hasher.Write(fileTag)
	}

	sum := make([]byte, digestSize)
	_, _ = hasher.Digest().Read(sum)
	return domain.Digest(hex.EncodeToString(sum)), nil
}
