package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stampkit/stamp/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// LockSuffix is appended to the artifact path to form the lock file.
	LockSuffix = ".lock"

	// DefaultLockTimeout bounds how long a process waits for a concurrent
	// build before giving up. A lock file older than this is considered
	// abandoned and taken over.
	DefaultLockTimeout = 10 * time.Minute

	lockPollInterval = 100 * time.Millisecond
)

// Lock is an advisory cross-process lock around the build+stamp sequence.
//
// The checksum core itself needs no locking - racing writers at worst leave
// a double trailer, and the tail read only ever observes the last one. The
// lock exists to avoid duplicate compile work, not for correctness.
type Lock struct {
	path    string
	timeout time.Duration
	held    bool
}

// NewLock creates a lock at the given path with the default timeout.
func NewLock(path string) *Lock {
	return NewLockWithTimeout(path, DefaultLockTimeout)
}

// NewLockWithTimeout creates a lock with an explicit timeout.
func NewLockWithTimeout(path string, timeout time.Duration) *Lock {
	return &Lock{path: path, timeout: timeout}
}

// Acquire takes the lock, polling until it is free, the timeout elapses or
// ctx is cancelled. An abandoned lock file older than the timeout is removed
// and taken over.
func (l *Lock) Acquire(ctx context.Context) error {
	deadline := time.Now().Add(l.timeout)

	for {
		ok, err := l.tryAcquire()
		if err != nil {
			return err
		}
		if ok {
			l.held = true
			return nil
		}

		if l.isStale() {
			// Best effort removal; the next tryAcquire decides who won.
			_ = os.Remove(l.path)
			continue
		}

		if time.Now().After(deadline) {
			return zerr.With(domain.ErrLockTimeout, "lock", l.path)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockPollInterval):
		}
	}
}

// Release removes the lock file. Safe to call when the lock was never
// acquired.
func (l *Lock) Release() {
	if !l.held {
		return
	}
	l.held = false
	_ = os.Remove(l.path)
}

func (l *Lock) tryAcquire() (bool, error) {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644) //nolint:gosec // Lock file next to the artifact
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to create build lock"), "lock", l.path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	_, _ = fmt.Fprintln(f, ownerToken())
	return true, nil
}

func (l *Lock) isStale() bool {
	info, err := os.Stat(l.path)
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) > l.timeout
}

// ownerToken identifies the lock holder for debugging a stuck lock.
func ownerToken() string {
	host, _ := os.Hostname()
	return fmt.Sprintf("%016x", xxhash.Sum64String(fmt.Sprintf("%s:%d", host, os.Getpid())))
}
