package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
)

const (
	// AppName is used for the configuration directory name
	AppName = "forage-build"

	// ConfigFileName is the configuration file looked up in the config directory
	ConfigFileName = "config.toml"

	DefaultScriptPrefix      = "f"
	DefaultScriptMode        = "0644"
	DefaultScriptMaxAttempts = 100

	FormatText = "text"
	FormatJSON = "json"
)

// Config is the forage-build tool configuration loaded from config.toml
type Config struct {
	Script  ScriptConfig  `toml:"script"`
	Output  OutputConfig  `toml:"output"`
	History HistoryConfig `toml:"history"`
}

// ScriptConfig controls build script materialization
type ScriptConfig struct {
	Prefix      string `toml:"prefix"`
	Mode        string `toml:"mode"` // octal file mode, e.g. "0644"
	MaxAttempts int    `toml:"max_attempts"`
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Format string `toml:"format"` // "text" or "json"
}

// HistoryConfig controls the record of written build scripts
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty means the user cache directory
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Script: ScriptConfig{
			Prefix:      DefaultScriptPrefix,
			Mode:        DefaultScriptMode,
			MaxAttempts: DefaultScriptMaxAttempts,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// HistoryDir returns the configured history directory, falling back to
// $XDG_CACHE_HOME/forage-build (or the OS equivalent)
func (h *HistoryConfig) HistoryDir() (string, error) {
	if h.Dir != "" {
		return h.Dir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve cache directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// DefaultPath returns $XDG_CONFIG_HOME/forage-build/config.toml (or the OS equivalent)
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, AppName, ConfigFileName), nil
}

// Load reads the configuration at path on top of the defaults.
// An empty path means DefaultPath, where a missing file yields the
// defaults. A file named explicitly must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !explicit {
				return Default(), nil
			}
			return nil, fmt.Errorf("config file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration as TOML, creating parent directories
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate checks that the Config is valid.
func (c *Config) Validate() error {
	if err := c.Script.Validate(); err != nil {
		return fmt.Errorf("script: %w", err)
	}

	validFormats := map[string]bool{FormatText: true, FormatJSON: true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be text or json)", c.Output.Format)
	}

	return nil
}

// Validate checks that the ScriptConfig is valid.
func (s *ScriptConfig) Validate() error {
	if s.Prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	// The prefix becomes part of a file name inside the project folder
	if strings.ContainsAny(s.Prefix, `/\`) || s.Prefix == "." || s.Prefix == ".." {
		return fmt.Errorf("prefix %q must be a single path element", s.Prefix)
	}

	if _, err := s.FileMode(); err != nil {
		return err
	}

	if s.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1 (got %d)", s.MaxAttempts)
	}

	return nil
}

// FileMode parses Mode as an octal permission set
func (s *ScriptConfig) FileMode() (fs.FileMode, error) {
	mode, err := strconv.ParseUint(s.Mode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid mode %q: must be octal", s.Mode)
	}
	if mode > 0777 {
		return 0, fmt.Errorf("invalid mode %q: only permission bits are allowed", s.Mode)
	}
	return fs.FileMode(mode), nil
}
