// Package cache implements artifact validity checking and stamping on top of
// the fingerprint and trailer adapters.
package cache

import (
	"github.com/stampkit/stamp/internal/core/domain"
	"github.com/stampkit/stamp/internal/core/ports"
)

// Validator decides whether a stamped artifact is still usable.
type Validator struct {
	fingerprinter ports.Fingerprinter
	trailers      ports.TrailerStore
	logger        ports.Logger
}

// NewValidator creates a new Validator.
func NewValidator(fingerprinter ports.Fingerprinter, trailers ports.TrailerStore, logger ports.Logger) *Validator {
	return &Validator{
		fingerprinter: fingerprinter,
		trailers:      trailers,
		logger:        logger,
	}
}

// Check reads the artifact's trailer and recomputes the digest over the file
// set recorded in it. The recorded set is used verbatim - dependency
// discovery is never re-run here, so validity only asks "do these exact
// files, read now, still hash to the recorded digest".
//
// Check is a read-only query: it never modifies the artifact and calling it
// twice without intervening writes yields the same verdict. Every failure
// mode resolves to an invalid verdict with a reason, never an error - a
// vanished dependency is a reason to rebuild, not to crash.
func (v *Validator) Check(artifactPath string, key domain.EnvironmentKey) domain.Verdict {
	t, err := v.trailers.Read(artifactPath)
	if err != nil {
		v.logger.Info("no usable checksum trailer, rebuilding", "artifact", artifactPath, "reason", err.Error())
		return domain.Verdict{Valid: false, Reason: err.Error()}
	}

	current, err := v.fingerprinter.ComputeDigest(t.Files, key)
	if err != nil {
		v.logger.Info("checksummed file unreadable, rebuilding", "artifact", artifactPath, "reason", err.Error())
		return domain.Verdict{Valid: false, Reason: err.Error()}
	}

	if current != t.Digest {
		v.logger.Info("checksum mismatch, rebuilding", "artifact", artifactPath)
		return domain.Verdict{Valid: false, Reason: "digest mismatch"}
	}
	return domain.Verdict{Valid: true}
}
