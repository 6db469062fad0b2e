// SPDX-License-Identifier: MPL-2.0

package aotcache

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/invowk/jarrunner/internal/platform"
)

// Janitor removes cache files left behind by earlier versions of an artifact.
//
// Purge is best-effort: failures to delete individual files are logged and
// skipped. It scans only the artifact's own directory.
type Janitor struct {
	// Extension is the cache file extension, without the dot.
	Extension string
	// Logger receives cleanup diagnostics. A nil Logger discards them.
	Logger *log.Logger
	// Lock serializes purges of the same artifact across jarrunner processes.
	Lock bool

	// foldCase makes name comparisons case-insensitive.
	foldCase bool
	// remove deletes a file; tests replace it to simulate failures.
	remove func(string) error
}

// NewJanitor creates a Janitor whose case sensitivity follows the host filesystem.
func NewJanitor(ext string, logger *log.Logger) *Janitor {
	return &Janitor{
		Extension: ext,
		Logger:    logger,
		Lock:      true,
		foldCase:  runtime.GOOS == platform.Windows || runtime.GOOS == platform.Darwin,
		remove:    os.Remove,
	}
}

// Purge deletes every cache file for ref's artifact except current.
// It returns the paths that were removed. The returned error is non-nil only
// when the directory could not be listed.
func (j *Janitor) Purge(ref ArtifactReference, current CacheEntry) ([]string, error) {
	logger := j.logger()

	if j.Lock {
		lock, err := acquirePurgeLock(ref)
		if err != nil {
			logger.Debug("purging without lock", "artifact", ref.Path, "error", err)
		} else {
			defer lock.Release()
		}
	}

	dir := ref.Directory()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list cache directory %s: %w", dir, err)
	}

	base := BaseName(ref.Path)
	currentPath := current.Path()
	remove := j.remove
	if remove == nil {
		remove = os.Remove
	}

	var removed []string
	for _, entry := range entries {
		if entry.IsDir() || !j.matches(entry.Name(), base) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if j.samePath(path, currentPath) {
			continue
		}
		if err := remove(path); err != nil {
			logger.Warn("failed to remove stale cache file", "path", path, "error", err)
			continue
		}
		logger.Debug("removed stale cache file", "path", path)
		removed = append(removed, path)
	}
	return removed, nil
}

// matches reports whether name has the shape <base>.<enc>.<enc>.<ext>.
// Requiring both middle segments to be base52 digits keeps the caches of
// sibling artifacts such as app.v2.jar out of app.jar's purge.
func (j *Janitor) matches(name, base string) bool {
	prefix := base + "."
	suffix := "." + j.Extension
	if len(name) <= len(prefix)+len(suffix) {
		return false
	}
	if !j.hasPrefix(name, prefix) || !j.hasSuffix(name, suffix) {
		return false
	}

	middle := name[len(prefix) : len(name)-len(suffix)]
	size, modTime, ok := strings.Cut(middle, ".")
	return ok && isEncoded(size) && isEncoded(modTime)
}

func (j *Janitor) hasPrefix(s, prefix string) bool {
	if j.foldCase {
		return strings.EqualFold(s[:len(prefix)], prefix)
	}
	return strings.HasPrefix(s, prefix)
}

func (j *Janitor) hasSuffix(s, suffix string) bool {
	if j.foldCase {
		return strings.EqualFold(s[len(s)-len(suffix):], suffix)
	}
	return strings.HasSuffix(s, suffix)
}

func (j *Janitor) samePath(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if j.foldCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}

func (j *Janitor) logger() *log.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return log.New(io.Discard)
}
