// SPDX-License-Identifier: MPL-2.0

// Package platform isolates the host console and desktop APIs used by the launcher.
//
// On Windows it talks to kernel32/user32 directly: the console window is
// hidden, the process detaches from its own console and tries to attach to
// the parent's, and errors in GUI mode are shown with MessageBox. On other
// hosts the same operations are approximated with terminal detection.
package platform
