// SPDX-License-Identifier: MPL-2.0

//go:build unix

package aotcache

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// purgeLock holds a blocking exclusive flock on a per-artifact file. The
// kernel releases the flock when the descriptor is closed, including when the
// process dies, so an orphaned zero-byte lock file is harmless.
type purgeLock struct {
	file *os.File
}

func acquirePurgeLock(ref ArtifactReference) (*purgeLock, error) {
	return acquirePurgeLockAt(purgeLockPath(ref))
}

// acquirePurgeLockAt opens (or creates) the lock file at path and blocks
// until the exclusive lock is granted.
func acquirePurgeLockAt(path string) (*purgeLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file %s: %w", path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("flock %s: %w", path, err)
	}

	return &purgeLock{file: f}, nil
}

// Release unlocks and closes the lock file. Calling it more than once is a no-op.
func (l *purgeLock) Release() {
	if l == nil || l.file == nil {
		return
	}
	_ = unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	_ = l.file.Close()
	l.file = nil
}
