// SPDX-License-Identifier: MPL-2.0

package aotcache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
)

// purgeLockPath returns the lock file used to serialize purges of ref's
// artifact. The file lives in the temp directory so nothing is added next to
// the artifact; its name is derived from the absolute artifact location.
func purgeLockPath(ref ArtifactReference) string {
	return purgeLockPathIn(os.TempDir(), ref)
}

func purgeLockPathIn(dir string, ref ArtifactReference) string {
	key := filepath.Join(ref.Directory(), BaseName(ref.Path))
	if abs, err := filepath.Abs(key); err == nil {
		key = abs
	}
	// Windows paths are case-insensitive; two spellings must share one lock.
	if filepath.Separator == '\\' {
		key = strings.ToLower(key)
	}
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(dir, "jarrunner-"+hex.EncodeToString(sum[:8])+".lock")
}
