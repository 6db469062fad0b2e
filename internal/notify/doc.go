// SPDX-License-Identifier: MPL-2.0

// Package notify delivers user-facing messages through the channel that
// matches the invocation mode: styled text on standard output for terminal
// launches, a modal message box for double-click launches.
package notify
