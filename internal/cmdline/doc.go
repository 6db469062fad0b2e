// SPDX-License-Identifier: MPL-2.0

// Package cmdline turns the launcher's own command line into the command line
// of the Java child process.
//
// Parsing works on tokens rather than on substrings of the raw line: the raw
// line is split into tokens that remember their exact source text and offsets,
// launcher flags are recognized only as whole unquoted tokens, and the text
// forwarded to Java is cut out of the original line so that its quoting is
// preserved byte for byte.
package cmdline
