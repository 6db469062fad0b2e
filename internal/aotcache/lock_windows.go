// SPDX-License-Identifier: MPL-2.0

//go:build windows

package aotcache

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// purgeLock holds an exclusive LockFileEx range lock on a per-artifact file.
// Windows drops the lock when the handle is closed or the process exits.
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

	ol := new(windows.Overlapped)
	if err := windows.LockFileEx(windows.Handle(f.Fd()), windows.LOCKFILE_EXCLUSIVE_LOCK, 0, 1, 0, ol); err != nil {
		f.Close()
		return nil, fmt.Errorf("LockFileEx %s: %w", path, err)
	}

	return &purgeLock{file: f}, nil
}

// Release unlocks and closes the lock file. Calling it more than once is a no-op.
func (l *purgeLock) Release() {
	if l == nil || l.file == nil {
		return
	}
	ol := new(windows.Overlapped)
	_ = windows.UnlockFileEx(windows.Handle(l.file.Fd()), 0, 1, 0, ol)
	_ = l.file.Close()
	l.file = nil
}
