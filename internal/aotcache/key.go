// SPDX-License-Identifier: MPL-2.0

package aotcache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invowk/jarrunner/pkg/types"
)

// DefaultExtension is the file extension of JVM AOT cache files.
const DefaultExtension = "aot"

type (
	// ArtifactReference is the on-disk identity of the artifact being run.
	ArtifactReference struct {
		// Path is the artifact path as given on the command line.
		Path string
		// SizeBytes is the artifact size in bytes.
		SizeBytes uint64
		// ModifiedAt is the modification time in Unix seconds.
		ModifiedAt uint64
	}

	// CacheIdentity is the encoded form of an ArtifactReference.
	CacheIdentity struct {
		EncodedSize    string
		EncodedModTime string
	}

	// CacheEntry describes the cache file for one artifact identity.
	CacheEntry struct {
		Directory string
		Filename  string
		// Exists is true when a regular file was present at computation time.
		Exists bool
	}
)

// StatArtifact reads the size and modification time of the artifact at path.
func StatArtifact(path string) (ArtifactReference, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ArtifactReference{}, fmt.Errorf("stat artifact: %w", err)
	}
	if info.IsDir() {
		return ArtifactReference{}, fmt.Errorf("stat artifact: %s is a directory", path)
	}
	return ArtifactReference{
		Path:       path,
		SizeBytes:  uint64(info.Size()),
		ModifiedAt: uint64(info.ModTime().Unix()),
	}, nil
}

// Identity encodes the reference's size and modification time.
func (r ArtifactReference) Identity() CacheIdentity {
	return CacheIdentity{
		EncodedSize:    Encode(r.SizeBytes),
		EncodedModTime: Encode(r.ModifiedAt),
	}
}

// Directory returns the directory holding the artifact (and its cache files).
func (r ArtifactReference) Directory() string {
	return filepath.Dir(r.Path)
}

// BaseName returns the artifact file name without directory and final extension.
func BaseName(artifactPath string) string {
	base := filepath.Base(artifactPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Filename returns the cache file name for the given base name, identity and extension.
func Filename(baseName string, id CacheIdentity, ext string) string {
	return baseName + "." + id.EncodedSize + "." + id.EncodedModTime + "." + ext
}

// BuildEntry computes the cache entry for ref and checks whether it already exists.
func BuildEntry(ref ArtifactReference, ext string) CacheEntry {
	entry := CacheEntry{
		Directory: ref.Directory(),
		Filename:  Filename(BaseName(ref.Path), ref.Identity(), ext),
	}
	entry.Exists = types.FilesystemPath(entry.Path()).IsRegularFile()
	return entry
}

// Path returns the full path of the cache file.
func (e CacheEntry) Path() string {
	return filepath.Join(e.Directory, e.Filename)
}
