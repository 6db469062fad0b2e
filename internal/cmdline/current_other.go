// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package cmdline

import "os"

// Current reconstructs a command line from os.Args. The kernel hands over an
// argument vector rather than a single string, so the line is rendered with
// Join and the tokens carry the original arguments as values.
func Current() (string, []Token) {
	return Join(os.Args)
}
