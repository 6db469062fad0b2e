// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ExecutableDir is the directory of the running launcher; a jarrunner.cue
	// file there takes precedence over the per-user file.
	ExecutableDir string
	// ConfigDirPath overrides the per-user config directory when set.
	ConfigDirPath string
	// Getenv replaces the process environment for overrides when set.
	Getenv func(string) string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, string, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider backed by Load.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	return Load(ctx, opts)
}
