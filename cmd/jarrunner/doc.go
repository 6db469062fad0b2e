// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the jarrunner command.
//
// The root command takes the raw launcher command line rather than parsed
// flags: jarrunner recognises its own flags anywhere in the line and forwards
// everything else to the JAR file untouched.
package cmd
