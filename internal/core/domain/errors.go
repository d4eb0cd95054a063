package domain

import "go.trai.ch/zerr"

var (
	// ErrNoTrailer is returned when an artifact has no readable trailer at its
	// tail: the file is missing, too short, carries a foreign or damaged magic
	// tag, or its payload fails to decode. All of these are normal cache-miss
	// outcomes, never fatal.
	ErrNoTrailer = zerr.New("no checksum trailer")

	// ErrFileReadFailed is returned when a file declared in a FileSet cannot
	// be opened or read during fingerprint computation.
	ErrFileReadFailed = zerr.New("failed to read fingerprint input")

	// ErrTrailerAppendFailed is returned when the artifact cannot be opened
	// for appending or the trailer write fails.
	ErrTrailerAppendFailed = zerr.New("failed to append checksum trailer")

	// ErrConfigParseFailed is returned when a sidecar config file exists but
	// cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse build config")

	// ErrConfigReadFailed is returned when a sidecar config file exists but
	// cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read build config")

	// ErrCompileFailed is returned when the compiler invocation fails.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrLockTimeout is returned when the advisory build lock cannot be
	// acquired within the configured timeout.
	ErrLockTimeout = zerr.New("timed out waiting for build lock")

	// ErrNoSourcesSpecified is returned when a command is invoked without any
	// source files.
	ErrNoSourcesSpecified = zerr.New("no source files specified")
)
