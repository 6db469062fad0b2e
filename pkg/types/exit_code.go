// SPDX-License-Identifier: MPL-2.0

package types

import "strconv"

const (
	// ExitSuccess is returned when the launcher (or a detached child spawn) succeeded.
	ExitSuccess ExitCode = 0
	// ExitFailure is returned for resolution, usage, and launch failures.
	ExitFailure ExitCode = 1
)

// ExitCode represents a process exit status code.
// On Windows the full 32-bit range reported by GetExitCodeProcess is carried
// through unchanged, so no range restriction is applied.
// The zero value (0) means success.
type ExitCode int

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
