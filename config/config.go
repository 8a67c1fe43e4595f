package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hackfs/hackfs/internal/util"
)

// Verbosity bounds accepted in overrides. Verbosity runs 1 (error) through
// 5 (trace) and is clamped before conversion to an internal log level.
const (
	ErrorVerbose = 1
	TraceVerbose = 5
)

// DefaultLogLvl is the default log verbosity (info).
const DefaultLogLvl = util.InfoLevel

// Config contains runtime configuration values for the namespace tree.
type Config struct {
	LogLvl   util.LogLevel // Internal log level (Default info)
	SeedPath string        // Optional path to a JSON seed-definition file applied at startup
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. LogLvl here is the user-facing
// verbosity (1-5), not the internal level. See [Config] for field
// descriptions.
type ConfigOverride struct {
	LogLvl   *int    `yaml:"log_lvl,omitempty" json:"log_lvl,omitempty"`
	SeedPath *string `yaml:"seed_path,omitempty" json:"seed_path,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl: DefaultLogLvl,
	}
}

// NewConfig creates a Config from defaults with any non-nil override fields
// applied on top.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = verbosityToLevel(*override.LogLvl)
	}
	if override.SeedPath != nil {
		c.SeedPath = *override.SeedPath
	}
}

// verbosityToLevel converts user-facing verbosity (1=error .. 5=trace,
// clamped) to the internal log level ordering.
func verbosityToLevel(verbose int) util.LogLevel {
	if verbose < ErrorVerbose {
		verbose = ErrorVerbose
	}
	if verbose > TraceVerbose {
		verbose = TraceVerbose
	}
	levels := [5]util.LogLevel{
		util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel,
	}
	return levels[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without
// merging. Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with
// defaults. This is a convenience function that combines NewDefaultConfig,
// LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
