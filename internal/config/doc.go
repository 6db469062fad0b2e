// SPDX-License-Identifier: MPL-2.0

// Package config handles jarrunner configuration using Viper with CUE as the file format.
//
// Configuration is read from jarrunner.cue next to the jarrunner executable, or
// from config.cue in the per-user configuration directory (%APPDATA%\jarrunner on
// Windows, ~/Library/Application Support/jarrunner on macOS, $XDG_CONFIG_HOME/jarrunner
// elsewhere). Every key can be overridden with a JARRUNNER_ environment variable,
// e.g. JARRUNNER_CACHE_ENABLED=false.
//
// Files are validated against the embedded CUE schema (config_schema.cue); values
// that arrive through the environment are checked by Config.Validate.
package config
