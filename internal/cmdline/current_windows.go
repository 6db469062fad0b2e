// SPDX-License-Identifier: MPL-2.0

//go:build windows

package cmdline

import "golang.org/x/sys/windows"

// Current returns the raw command line of this process, exactly as Windows
// received it, and its tokens.
func Current() (string, []Token) {
	line := windows.UTF16PtrToString(windows.GetCommandLine())
	return line, Tokenize(line)
}
