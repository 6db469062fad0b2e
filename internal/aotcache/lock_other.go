// SPDX-License-Identifier: MPL-2.0

//go:build !unix && !windows

package aotcache

import "errors"

// errLockUnavailable is returned where no advisory file lock exists; the
// janitor then purges unlocked.
var errLockUnavailable = errors.New("file locking not available on this platform")

type purgeLock struct{}

func acquirePurgeLock(ArtifactReference) (*purgeLock, error) {
	return nil, errLockUnavailable
}

// Release is a no-op.
func (l *purgeLock) Release() {}
