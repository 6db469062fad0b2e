// SPDX-License-Identifier: MPL-2.0

// Package launcher starts the Java runtime for a JAR file. Run wires mode
// detection, configuration, argument parsing, executable resolution, AOT
// cache maintenance and command assembly; Launch spawns the child and either
// waits for its exit code (terminal launches) or detaches from it
// (double-click launches).
package launcher
