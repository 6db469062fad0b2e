// SPDX-License-Identifier: MPL-2.0

// Package javaexe locates the Java launcher binary for the detected mode.
package javaexe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invowk/jarrunner/pkg/types"
)

// PathEnv is the environment variable holding the executable search path.
const PathEnv = "PATH"

// ErrNotFound is the sentinel error wrapped by ResolutionError.
var ErrNotFound = errors.New("java executable not found")

type (
	// Resolver finds an executable either below an explicit home directory
	// or in the directories of the search path.
	Resolver struct {
		// Getenv reads environment variables; nil means os.Getenv.
		Getenv func(string) string
	}

	// ResolutionError reports where the executable was looked for.
	ResolutionError struct {
		// Name is the executable file name that was searched for.
		Name string
		// Path is the full candidate path when an override was given.
		Path types.FilesystemPath
		// FromOverride is true when the lookup used an explicit home directory.
		FromOverride bool
	}
)

// Resolve returns the path of the executable called name. When home is
// non-empty only <home>/bin/<name> is considered; otherwise the first regular
// file named name in the search path wins. There is no fallback between the
// console and windowed variants: name is fixed by the caller.
func (r Resolver) Resolve(name, home string) (types.FilesystemPath, error) {
	if home != "" {
		candidate := types.FilesystemPath(filepath.Join(home, "bin", name))
		if !candidate.IsRegularFile() {
			return "", &ResolutionError{Name: name, Path: candidate, FromOverride: true}
		}
		return candidate, nil
	}

	for _, dir := range filepath.SplitList(r.getenv(PathEnv)) {
		if dir == "" {
			continue
		}
		candidate := types.FilesystemPath(filepath.Join(dir, name))
		if candidate.IsRegularFile() {
			return candidate, nil
		}
	}
	return "", &ResolutionError{Name: name}
}

func (r Resolver) getenv(key string) string {
	if r.Getenv != nil {
		return r.Getenv(key)
	}
	return os.Getenv(key)
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	if e.FromOverride {
		return fmt.Sprintf("java not found at specified location: %s", e.Path)
	}
	return fmt.Sprintf("java not found in %s (looking for %s)", PathEnv, e.Name)
}

// Unwrap returns ErrNotFound for errors.Is() compatibility.
func (e *ResolutionError) Unwrap() error { return ErrNotFound }
