// SPDX-License-Identifier: MPL-2.0

package aotcache

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/invowk/jarrunner/internal/testutil"
)

func touch(t *testing.T, path string) {
	t.Helper()
	testutil.MustWriteFile(t, path, nil, 0o644)
}

func newTestJanitor() *Janitor {
	j := NewJanitor(DefaultExtension, nil)
	j.Lock = false
	return j
}

func TestJanitor_PurgeKeepsOnlyCurrent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ref := ArtifactReference{Path: filepath.Join(dir, "app.jar"), SizeBytes: 500, ModifiedAt: 900}
	touch(t, ref.Path)
	current := BuildEntry(ref, DefaultExtension)
	touch(t, current.Path())
	touch(t, filepath.Join(dir, "app.1.2.aot"))
	touch(t, filepath.Join(dir, "app.A.tt.aot"))

	j := newTestJanitor()
	for pass := range 2 {
		if _, err := j.Purge(ref, current); err != nil {
			t.Fatalf("pass %d: Purge() error: %v", pass, err)
		}
		want := []string{"app.jar", current.Filename}
		slices.Sort(want)
		if got := testutil.ListDir(t, dir); !slices.Equal(got, want) {
			t.Errorf("pass %d: directory = %v, want %v", pass, got, want)
		}
	}
}

func TestJanitor_IdentityChangeRemovesPrevious(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ref := ArtifactReference{Path: filepath.Join(dir, "app.jar"), SizeBytes: 500, ModifiedAt: 900}
	old := BuildEntry(ref, DefaultExtension)
	touch(t, old.Path())

	ref.ModifiedAt = 901
	next := BuildEntry(ref, DefaultExtension)
	if next.Filename == old.Filename {
		t.Fatal("identity change produced the same filename")
	}

	j := newTestJanitor()
	removed, err := j.Purge(ref, next)
	if err != nil {
		t.Fatalf("Purge() error: %v", err)
	}
	if len(removed) != 1 || removed[0] != old.Path() {
		t.Errorf("removed = %v, want [%s]", removed, old.Path())
	}

	// The JVM writes the new cache; a further pass must leave it alone.
	touch(t, next.Path())
	if _, err := j.Purge(ref, next); err != nil {
		t.Fatalf("Purge() error: %v", err)
	}
	if got := testutil.ListDir(t, dir); !slices.Equal(got, []string{next.Filename}) {
		t.Errorf("directory = %v, want [%s]", got, next.Filename)
	}
}

func TestJanitor_LeavesUnrelatedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ref := ArtifactReference{Path: filepath.Join(dir, "app.jar"), SizeBytes: 1, ModifiedAt: 1}
	current := BuildEntry(ref, DefaultExtension)

	keep := []string{
		"app.v2.5.6.aot",  // cache of sibling artifact app.v2.jar
		"app.5.aot",       // only one identity segment
		"app.1.2.txt",     // different extension
		"other.1.2.aot",   // different artifact
		"application.aot", // no identity at all
		"app.I.2.aot",     // not base52
	}
	for _, name := range keep {
		touch(t, filepath.Join(dir, name))
	}
	if err := os.Mkdir(filepath.Join(dir, "app.3.4.aot"), 0o755); err != nil {
		t.Fatalf("Mkdir() error: %v", err)
	}

	removed, err := newTestJanitor().Purge(ref, current)
	if err != nil {
		t.Fatalf("Purge() error: %v", err)
	}
	if len(removed) != 0 {
		t.Errorf("removed = %v, want none", removed)
	}
	if got := len(testutil.ListDir(t, dir)); got != len(keep)+1 {
		t.Errorf("directory has %d entries, want %d", got, len(keep)+1)
	}
}

func TestJanitor_DeleteFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ref := ArtifactReference{Path: filepath.Join(dir, "app.jar"), SizeBytes: 1, ModifiedAt: 1}
	current := BuildEntry(ref, DefaultExtension)
	touch(t, filepath.Join(dir, "app.7.7.aot"))
	touch(t, filepath.Join(dir, "app.8.8.aot"))

	j := newTestJanitor()
	j.remove = func(path string) error {
		if filepath.Base(path) == "app.7.7.aot" {
			return errors.New("sharing violation")
		}
		return os.Remove(path)
	}

	removed, err := j.Purge(ref, current)
	if err != nil {
		t.Fatalf("Purge() error: %v", err)
	}
	if len(removed) != 1 || filepath.Base(removed[0]) != "app.8.8.aot" {
		t.Errorf("removed = %v, want [app.8.8.aot]", removed)
	}
}

func TestJanitor_MissingDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "gone")
	ref := ArtifactReference{Path: filepath.Join(dir, "app.jar")}

	if _, err := newTestJanitor().Purge(ref, BuildEntry(ref, DefaultExtension)); err == nil {
		t.Error("Purge() on a missing directory returned nil error")
	}
}

func TestJanitor_WithLock(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ref := ArtifactReference{Path: filepath.Join(dir, "app.jar"), SizeBytes: 2, ModifiedAt: 3}
	current := BuildEntry(ref, DefaultExtension)
	touch(t, filepath.Join(dir, "app.9.9.aot"))

	j := NewJanitor(DefaultExtension, nil)
	removed, err := j.Purge(ref, current)
	if err != nil {
		t.Fatalf("Purge() error: %v", err)
	}
	if len(removed) != 1 {
		t.Errorf("removed = %v, want one file", removed)
	}
}

func TestPurgeLockPath_StablePerArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := ArtifactReference{Path: filepath.Join(dir, "app.jar")}
	b := ArtifactReference{Path: filepath.Join(dir, "app.jar"), SizeBytes: 99}
	c := ArtifactReference{Path: filepath.Join(dir, "other.jar")}

	if purgeLockPathIn(dir, a) != purgeLockPathIn(dir, b) {
		t.Error("lock path depends on artifact identity, want only on location")
	}
	if purgeLockPathIn(dir, a) == purgeLockPathIn(dir, c) {
		t.Error("different artifacts share a lock path")
	}
}
