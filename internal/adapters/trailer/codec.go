// Package trailer implements the checksum trailer footer format.
//
// A stamped artifact ends with:
//
//	... artifact bytes ... | payload | footer
//
// where footer is a little-endian int64 payload length followed by the
// 9-byte ASCII magic tag, and payload is a JSON array of the recorded file
// set and digest. The footer is read by seeking back from the absolute end
// of the file, so no external offset bookkeeping is needed and an artifact
// stamped twice is read as if only the last trailer existed.
package trailer

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"os"

	"github.com/stampkit/stamp/internal/core/domain"
	"github.com/stampkit/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TrailerStore = (*Codec)(nil)

const (
	// magicTag marks a trailer-carrying artifact. The constant is frozen:
	// changing it orphans every artifact ever stamped.
	magicTag = "gostamp01"

	// footerSize is the fixed footer length: int64 payload length plus the
	// magic tag.
	footerSize = 8 + len(magicTag)
)

// Codec implements ports.TrailerStore.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// payload is the JSON shape of the trailer: [ [paths...], digest ]. The
// two-element array round-trips exactly and keeps the payload self-describing
// without a schema.
type payload struct {
	Files  domain.FileSet
	Digest domain.Digest
}

func (p payload) MarshalJSON() ([]byte, error) {
	files := p.Files
	if files == nil {
		files = domain.FileSet{}
	}
	return json.Marshal([]any{files, p.Digest})
}

func (p *payload) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return zerr.New("trailer payload is not a two-element array")
	}
	if err := json.Unmarshal(raw[0], &p.Files); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &p.Digest)
}

// Encode serializes the trailer to its on-disk byte form: payload followed by
// the fixed footer. Pure function, no I/O.
func (c *Codec) Encode(t domain.Trailer) []byte {
	body, err := json.Marshal(payload{Files: t.Files, Digest: t.Digest})
	if err != nil {
		// A FileSet of strings and a string digest cannot fail to marshal.
		panic(err)
	}

	buf := make([]byte, len(body)+footerSize)
	copy(buf, body)
	binary.LittleEndian.PutUint64(buf[len(body):], uint64(len(body)))
	copy(buf[len(body)+8:], magicTag)
	return buf
}

// Append writes the encoded trailer to the end of the artifact. The write is
// a single call in append mode: earlier bytes are never touched, so a crash
// mid-write leaves either an intact previous trailer or a tail that fails to
// decode - both safe outcomes.
func (c *Codec) Append(artifactPath string, t domain.Trailer) error {
	f, err := os.OpenFile(artifactPath, os.O_WRONLY|os.O_APPEND, 0) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrTrailerAppendFailed, err.Error()), "path", artifactPath)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := f.Write(c.Encode(t)); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrTrailerAppendFailed, err.Error()), "path", artifactPath)
	}
	return nil
}

// Read decodes the trailer at the artifact's absolute end. All failure modes
// return an error wrapping domain.ErrNoTrailer with a diagnostic reason; a
// corrupt trailer is indistinguishable from an absent one on purpose, so
// foreign binaries with arbitrary tails are handled safely.
func (c *Codec) Read(artifactPath string) (domain.Trailer, error) {
	f, err := os.Open(artifactPath) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.Trailer{}, miss("artifact not readable", artifactPath, err)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	info, err := f.Stat()
	if err != nil {
		return domain.Trailer{}, miss("artifact not statable", artifactPath, err)
	}
	size := info.Size()
	if size < int64(footerSize) {
		return domain.Trailer{}, miss("artifact shorter than trailer footer", artifactPath, nil)
	}

	var footer [footerSize]byte
	if _, err := f.ReadAt(footer[:], size-int64(footerSize)); err != nil {
		return domain.Trailer{}, miss("failed to read trailer footer", artifactPath, err)
	}
	if string(footer[8:]) != magicTag {
		return domain.Trailer{}, miss("trailer magic tag missing", artifactPath, nil)
	}

	length := int64(binary.LittleEndian.Uint64(footer[:8]))
	if length < 0 || length > size-int64(footerSize) {
		return domain.Trailer{}, miss("trailer payload length out of range", artifactPath, nil)
	}

	body := make([]byte, length)
	if _, err := f.ReadAt(body, size-int64(footerSize)-length); err != nil {
		return domain.Trailer{}, miss("failed to read trailer payload", artifactPath, err)
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.Trailer{}, miss("trailer payload malformed", artifactPath, err)
	}
	return domain.Trailer{Files: p.Files, Digest: p.Digest}, nil
}

func miss(reason, path string, cause error) error {
	err := zerr.Wrap(domain.ErrNoTrailer, reason)
	if cause != nil && !isEOF(cause) {
		err = zerr.With(err, "cause", cause.Error())
	}
	return zerr.With(err, "path", path)
}

func isEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF //nolint:errorlint // Sentinel comparison is intended
}
