// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invowk/jarrunner/internal/cueutil"
	"github.com/invowk/jarrunner/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "jarrunner"
	// ConfigFileName is the name of the per-user config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment variable overrides.
	EnvPrefix = "JARRUNNER"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the per-user jarrunner configuration directory.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// PortableConfigPath returns the path of the config file that sits next to
// the executable in exeDir.
func PortableConfigPath(exeDir string) string {
	return filepath.Join(exeDir, AppName+"."+ConfigFileExt)
}

// Load reads the configuration described by opts and returns it with the
// path of the file it read, if any. Without a config file the result is the
// defaults with environment overrides applied.
//
// When the file cannot be used, Load returns the error together with that
// file-less configuration so callers can keep running on it. The returned
// Config is nil only when the environment overrides themselves are invalid.
func Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	resolvedPath, err := findConfigFile(opts)
	if err != nil {
		return fallbackConfig(opts.Getenv), "", err
	}
	if resolvedPath == "" {
		cfg, err := decode(newViper(opts.Getenv), "")
		return cfg, "", err
	}

	v := newViper(opts.Getenv)
	if err := loadCUEIntoViper(v, resolvedPath); err != nil {
		return fallbackConfig(opts.Getenv), resolvedPath, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(resolvedPath).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check that the file contains valid CUE syntax").
			WithSuggestion("Verify the configuration values match the expected schema").
			Wrap(err).
			BuildError()
	}

	cfg, err := decode(v, resolvedPath)
	if err != nil {
		return fallbackConfig(opts.Getenv), resolvedPath, err
	}
	return cfg, resolvedPath, nil
}

// decode unmarshals and validates the merged settings of v.
func decode(v *viper.Viper, path string) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, issue.WrapWithContext(err, "parse configuration", path)
	}

	// Environment values bypass the CUE schema.
	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check " + EnvPrefix + "_* environment variables for typos").
			Wrap(err).
			BuildError()
	}
	return &cfg, nil
}

// fallbackConfig returns the defaults with environment overrides applied, or
// nil when the environment is invalid too.
func fallbackConfig(getenv func(string) string) *Config {
	cfg, err := decode(newViper(getenv), "")
	if err != nil {
		return nil
	}
	return cfg
}

// newViper returns a viper instance carrying the defaults and environment
// bindings for every key.
func newViper(getenv func(string) string) *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("runtime_home", defaults.RuntimeHome)
	v.SetDefault("mode", string(defaults.Mode))
	v.SetDefault("runtime.console_executable", string(defaults.Runtime.ConsoleExecutable))
	v.SetDefault("runtime.windowed_executable", string(defaults.Runtime.WindowedExecutable))
	v.SetDefault("runtime.timing_properties", defaults.Runtime.TimingProperties)
	v.SetDefault("cache.enabled", defaults.Cache.Enabled)
	v.SetDefault("cache.extension", string(defaults.Cache.Extension))
	v.SetDefault("cache.lock", defaults.Cache.Lock)
	v.SetDefault("log.level", string(defaults.Log.Level))

	if getenv == nil {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
		return v
	}

	// An injected environment is applied as explicit overrides.
	for _, key := range v.AllKeys() {
		name := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if value := getenv(name); value != "" {
			v.Set(key, value)
		}
	}
	return v
}

// findConfigFile picks the config file to read: the explicit path, then the
// portable file next to the executable, then the per-user file.
func findConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Verify the file path is correct").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	if opts.ExecutableDir != "" {
		if path := PortableConfigPath(opts.ExecutableDir); fileExists(path) {
			return path, nil
		}
	}

	cfgDir := opts.ConfigDirPath
	if cfgDir == "" {
		dir, err := ConfigDir()
		if err != nil {
			// No per-user directory on this host; run on defaults.
			return "", nil //nolint:nilerr
		}
		cfgDir = dir
	}
	if path := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt); fileExists(path) {
		return path, nil
	}
	return "", nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// The file decodes to map[string]any rather than Config so that viper keeps
// its defaults for keys the file leaves unset.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return cueutil.FormatError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return cueutil.FormatError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return cueutil.FormatError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil && !info.IsDir()
}
