// SPDX-License-Identifier: MPL-2.0

// Package aotcache names, locates, and prunes ahead-of-time compilation cache
// files that live beside a JAR artifact.
//
// A cache file is identified by the artifact's size and modification time,
// both encoded with a compact base52 alphabet:
//
//	<baseName>.<encodedSize>.<encodedModTime>.<ext>
//
// The file contents are written by the JVM itself; this package only decides
// which file name the JVM should read or produce and removes the entries that
// belong to earlier versions of the same artifact.
package aotcache
