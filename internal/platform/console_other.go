// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package platform

import (
	"os"

	"golang.org/x/term"
)

// HostConsole approximates the Windows console probe with terminal detection:
// outside Windows there is no console window to hide, and "attaching to the
// parent console" succeeds exactly when one of the standard streams is a
// terminal inherited from the launching shell.
type HostConsole struct {
	files []*os.File
}

// NewHostConsole returns the console capability for this process.
func NewHostConsole() *HostConsole {
	return newHostConsoleFor(os.Stdin, os.Stdout, os.Stderr)
}

func newHostConsoleFor(files ...*os.File) *HostConsole {
	return &HostConsole{files: files}
}

// HideOwn is a no-op: there is no console window of our own.
func (*HostConsole) HideOwn() {}

// AttachParent reports whether any standard stream is a terminal.
func (c *HostConsole) AttachParent() bool {
	for _, f := range c.files {
		if f != nil && term.IsTerminal(int(f.Fd())) {
			return true
		}
	}
	return false
}
