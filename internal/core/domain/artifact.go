// Package domain contains the core types for artifact validity caching.
package domain

// FileSet is an ordered list of absolute file paths whose combined content
// determines a build's fingerprint. Order is significant: it is part of the
// fingerprint input, so the same paths in a different order produce a
// different digest.
type FileSet []string

// Digest is the hex-encoded fingerprint over a FileSet's contents and an
// EnvironmentKey. It is a cache key, not a security boundary.
type Digest string

// Trailer is the self-describing record appended to an artifact's tail. It
// stores the exact FileSet used at stamp time together with the digest
// computed over it, so a later validity check never depends on re-running
// dependency discovery.
type Trailer struct {
	Files  FileSet
	Digest Digest
}

// Verdict is the outcome of a cache validity check. Reason is only
// meaningful when Valid is false and is intended for logging, not parsing.
type Verdict struct {
	Valid  bool
	Reason string
}
