// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/jarrunner/internal/aotcache"
	"github.com/invowk/jarrunner/internal/mode"
	"github.com/invowk/jarrunner/internal/platform"

	"github.com/charmbracelet/log"
)

var (
	// ErrInvalidExecutableName is the sentinel error wrapped by InvalidExecutableNameError.
	ErrInvalidExecutableName = errors.New("invalid executable name")
	// ErrInvalidCacheExtension is the sentinel error wrapped by InvalidCacheExtensionError.
	ErrInvalidCacheExtension = errors.New("invalid cache extension")
	// ErrInvalidLogLevel is the sentinel error wrapped by InvalidLogLevelError.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ExecutableName is the file name of a java executable, looked up in a
	// bin directory or on PATH. It must not contain path separators.
	ExecutableName string

	// InvalidExecutableNameError is returned when an ExecutableName is empty
	// or contains a path separator.
	InvalidExecutableNameError struct {
		Value ExecutableName
	}

	// CacheExtension is the file extension of AOT cache files, without the dot.
	CacheExtension string

	// InvalidCacheExtensionError is returned when a CacheExtension is empty or
	// contains anything but ASCII letters and digits.
	InvalidCacheExtensionError struct {
		Value CacheExtension
	}

	// LogLevel is a charmbracelet/log level name.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the launcher configuration.
	Config struct {
		// RuntimeHome is the JDK directory used when --cache-home is absent.
		RuntimeHome string `json:"runtime_home" mapstructure:"runtime_home"`
		// Mode forces console or GUI mode after detection.
		Mode mode.Override `json:"mode" mapstructure:"mode"`
		// Runtime configures the java executables.
		Runtime RuntimeConfig `json:"runtime" mapstructure:"runtime"`
		// Cache configures AOT cache handling.
		Cache CacheConfig `json:"cache" mapstructure:"cache"`
		// Log configures diagnostic logging.
		Log LogConfig `json:"log" mapstructure:"log"`
	}

	// RuntimeConfig selects the java executables and the properties passed to them.
	RuntimeConfig struct {
		ConsoleExecutable  ExecutableName `json:"console_executable" mapstructure:"console_executable"`
		WindowedExecutable ExecutableName `json:"windowed_executable" mapstructure:"windowed_executable"`
		// TimingProperties passes the launcher timing stamps as -D properties.
		TimingProperties bool `json:"timing_properties" mapstructure:"timing_properties"`
	}

	// CacheConfig controls the AOT cache.
	CacheConfig struct {
		// Enabled turns AOT cache handling on (default: true). --disable-cache
		// turns it off for one launch.
		Enabled   bool           `json:"enabled" mapstructure:"enabled"`
		Extension CacheExtension `json:"extension" mapstructure:"extension"`
		// Lock serializes stale-cache cleanup across concurrent launches.
		Lock bool `json:"lock" mapstructure:"lock"`
	}

	// LogConfig controls the stderr logger.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	console, windowed := platform.RuntimeExecutables()
	return &Config{
		Mode: mode.OverrideAuto,
		Runtime: RuntimeConfig{
			ConsoleExecutable:  ExecutableName(console),
			WindowedExecutable: ExecutableName(windowed),
			TimingProperties:   true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Extension: CacheExtension(aotcache.DefaultExtension),
			Lock:      true,
		},
		Log: LogConfig{Level: LogLevel(log.WarnLevel.String())},
	}
}

// Validate returns an error if any field of the Config is invalid.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Mode.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Runtime.ConsoleExecutable.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Runtime.WindowedExecutable.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Cache.Extension.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Log.Level.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// ExecutableFor returns the configured executable name for the mode.
func (c RuntimeConfig) ExecutableFor(interactive bool) string {
	if interactive {
		return string(c.ConsoleExecutable)
	}
	return string(c.WindowedExecutable)
}

// Validate returns an error if the name is empty or contains a path separator.
func (n ExecutableName) Validate() error {
	if strings.TrimSpace(string(n)) == "" || strings.ContainsAny(string(n), `/\`) {
		return &InvalidExecutableNameError{Value: n}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidExecutableNameError) Error() string {
	return fmt.Sprintf("invalid executable name %q (must be a bare file name)", e.Value)
}

// Unwrap returns ErrInvalidExecutableName for errors.Is() compatibility.
func (e *InvalidExecutableNameError) Unwrap() error { return ErrInvalidExecutableName }

// Validate returns an error if the extension is empty or not alphanumeric.
func (x CacheExtension) Validate() error {
	if x == "" {
		return &InvalidCacheExtensionError{Value: x}
	}
	for _, c := range x {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return &InvalidCacheExtensionError{Value: x}
		}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidCacheExtensionError) Error() string {
	return fmt.Sprintf("invalid cache extension %q (letters and digits only)", e.Value)
}

// Unwrap returns ErrInvalidCacheExtension for errors.Is() compatibility.
func (e *InvalidCacheExtensionError) Unwrap() error { return ErrInvalidCacheExtension }

// Level parses the level name.
func (l LogLevel) Level() (log.Level, error) {
	level, err := log.ParseLevel(string(l))
	if err != nil {
		return 0, &InvalidLogLevelError{Value: l}
	}
	return level, nil
}

// Validate returns an error if the level name is not recognized.
func (l LogLevel) Validate() error {
	_, err := l.Level()
	return err
}

// Error implements the error interface.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return "invalid config: " + e.FieldErrors[0].Error()
	}
	return fmt.Sprintf("invalid config: %d field errors", len(e.FieldErrors))
}

// Unwrap returns the field errors together with ErrInvalidConfig so that
// errors.Is() matches both the aggregate and each field sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
