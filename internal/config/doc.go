// Package config provides the forage-build tool configuration.
//
// # Configuration File
//
// Configuration is read from $XDG_CONFIG_HOME/forage-build/config.toml
// (or the path given with --config). A missing file yields Default().
//
//	[script]
//	prefix = "f"           # build script file name prefix
//	mode = "0644"          # octal permissions, no exec bit by default
//	max_attempts = 100     # exclusive-create attempts before giving up
//
//	[output]
//	format = "text"        # "text" or "json"
//
//	[history]
//	enabled = false        # record written scripts and plans
//	dir = ""               # defaults to $XDG_CACHE_HOME/forage-build
//
// Keys set in the file override the defaults; unknown keys are rejected.
//
// # Validation
//
// Load validates after decoding. Validate can also be called directly on
// a Config built in code.
package config
